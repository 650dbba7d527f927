package app_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingHttp "github.com/nekogravitycat/shareit-backend/internal/booking/http"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
)

func ids(t *testing.T, body []byte) []string {
	t.Helper()
	var list []bookingHttp.BookingResponse
	require.NoError(t, json.Unmarshal(body, &list))
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.ID
	}
	return out
}

func TestBookingLifecycle(t *testing.T) {
	clearTables(t)

	_, ownerToken := createTestUser(t, "owner@shareit.test")
	_, bookerToken := createTestUser(t, "booker@shareit.test")
	_, strangerToken := createTestUser(t, "stranger@shareit.test")

	available := true
	w := executeRequest("POST", "/v1/items", itemHttp.CreateItemRequest{
		Name: "Drill", Description: "Cordless drill", Available: &available,
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var it itemHttp.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &it))

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	var bookingID, contestedID string

	t.Run("Create starts WAITING", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			ItemID: it.ID, Start: start, End: start.Add(time.Hour),
		}, bookerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "WAITING", resp.Status)
		assert.Equal(t, "Drill", resp.Item.Name)
		bookingID = resp.ID
	})

	t.Run("Owner cannot book own item", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			ItemID: it.ID, Start: start, End: start.Add(time.Hour),
		}, ownerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Equal start and end is rejected", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			ItemID: it.ID, Start: start, End: start,
		}, bookerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Stranger cannot view", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/"+bookingID, nil, strangerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = executeRequest("GET", "/v1/bookings/"+bookingID, nil, ownerToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Booker cannot decide", func(t *testing.T) {
		w := executeRequest("PATCH", "/v1/bookings/"+bookingID+"?approved=true", nil, bookerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Approve once", func(t *testing.T) {
		w := executeRequest("PATCH", "/v1/bookings/"+bookingID+"?approved=true", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = executeRequest("PATCH", "/v1/bookings/"+bookingID+"?approved=false", nil, ownerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"booking has already been decided"}`, w.Body.String())
	})

	t.Run("Concurrent decisions have one winner", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
			ItemID: it.ID, Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour),
		}, bookerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var contested bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contested))
		contestedID = contested.ID

		var wg sync.WaitGroup
		codes := make([]int, 2)
		bodies := make([]string, 2)
		for i, approved := range []string{"true", "false"} {
			wg.Add(1)
			go func(i int, approved string) {
				defer wg.Done()
				w := executeRequest("PATCH", "/v1/bookings/"+contested.ID+"?approved="+approved, nil, ownerToken)
				codes[i], bodies[i] = w.Code, w.Body.String()
			}(i, approved)
		}
		wg.Wait()

		assert.ElementsMatch(t, []int{http.StatusOK, http.StatusBadRequest}, codes, bodies)
		for i, code := range codes {
			if code == http.StatusBadRequest {
				assert.JSONEq(t, `{"error":"booking has already been decided"}`, bodies[i])
			}
		}

		// The contested booking no longer appears as WAITING.
		w = executeRequest("GET", "/v1/bookings?state=WAITING", nil, bookerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, ids(t, w.Body.Bytes()), contested.ID)
	})

	t.Run("Future listing", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings?state=FUTURE&from=0&size=10", nil, bookerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{contestedID, bookingID}, ids(t, w.Body.Bytes()))

		w = executeRequest("GET", "/v1/bookings/owner?state=FUTURE", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{contestedID, bookingID}, ids(t, w.Body.Bytes()))

		w = executeRequest("GET", "/v1/bookings?state=PAST", nil, bookerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, ids(t, w.Body.Bytes()))
	})

	t.Run("Unknown state", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings?state=NOT_A_STATE", nil, bookerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Unknown state: UNSUPPORTED_STATUS"}`, w.Body.String())
	})

	t.Run("Item summary shows next booking to the owner only", func(t *testing.T) {
		w := executeRequest("GET", "/v1/items/"+it.ID, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var summary itemHttp.ItemSummaryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		require.NotNil(t, summary.NextBooking)
		assert.Equal(t, bookingID, summary.NextBooking.ID)
		assert.Nil(t, summary.LastBooking)

		w = executeRequest("GET", "/v1/items/"+it.ID, nil, bookerToken)
		require.Equal(t, http.StatusOK, w.Code)
		summary = itemHttp.ItemSummaryResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Nil(t, summary.NextBooking)
	})
}

func TestBookingCategories(t *testing.T) {
	clearTables(t)

	_, ownerToken := createTestUser(t, "owner@shareit.test")
	booker, bookerToken := createTestUser(t, "booker@shareit.test")

	available := true
	w := executeRequest("POST", "/v1/items", itemHttp.CreateItemRequest{
		Name: "Tent", Description: "Two person tent", Available: &available,
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var it itemHttp.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &it))

	now := time.Now().UTC()
	past := seedBooking(t, it.ID, booker.ID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")
	current := seedBooking(t, it.ID, booker.ID, now.Add(-time.Hour), now.Add(time.Hour), "APPROVED")
	future := seedBooking(t, it.ID, booker.ID, now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")
	rejected := seedBooking(t, it.ID, booker.ID, now.Add(72*time.Hour), now.Add(96*time.Hour), "REJECTED")

	cases := map[string][]string{
		"ALL":      {rejected, future, current, past},
		"CURRENT":  {current},
		"PAST":     {past},
		"FUTURE":   {rejected, future},
		"WAITING":  {future},
		"REJECTED": {rejected},
	}

	for state, want := range cases {
		t.Run(state, func(t *testing.T) {
			w := executeRequest("GET", "/v1/bookings?state="+state, nil, bookerToken)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, want, ids(t, w.Body.Bytes()), "booker view")

			w = executeRequest("GET", "/v1/bookings/owner?state="+state, nil, ownerToken)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, want, ids(t, w.Body.Bytes()), "owner view")
		})
	}

	t.Run("Listing is stable", func(t *testing.T) {
		first := executeRequest("GET", "/v1/bookings?state=ALL", nil, bookerToken).Body.String()
		second := executeRequest("GET", "/v1/bookings?state=ALL", nil, bookerToken).Body.String()
		assert.Equal(t, first, second)
	})

	t.Run("Paging rounds down to whole pages", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings?state=ALL&from=3&size=2", nil, bookerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{current, past}, ids(t, w.Body.Bytes()))
	})

	t.Run("Only finished renters may comment", func(t *testing.T) {
		w := executeRequest("POST", fmt.Sprintf("/v1/items/%s/comment", it.ID), map[string]string{"text": "Great tent"}, bookerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = executeRequest("POST", fmt.Sprintf("/v1/items/%s/comment", it.ID), map[string]string{"text": "Mine"}, ownerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = executeRequest("GET", "/v1/items/"+it.ID, nil, ownerToken)
		var summary itemHttp.ItemSummaryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		require.Len(t, summary.Comments, 1)
		require.NotNil(t, summary.LastBooking)
		assert.Equal(t, current, summary.LastBooking.ID)
	})
}
