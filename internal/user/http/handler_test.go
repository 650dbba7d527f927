package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/user"
	userHttp "github.com/nekogravitycat/shareit-backend/internal/user/http"
)

const annID = "7d3e2f10-9a4b-4c5d-8e6f-0a1b2c3d4e5f"

// stubUsers knows a single account, ann@example.com / password1.
type stubUsers struct {
	user.Service
}

var ann = &user.User{ID: annID, Email: "ann@example.com", Name: "Ann", IsActive: true, CreatedAt: time.Now()}

func (stubUsers) Register(_ context.Context, req user.RegisterRequest) (*user.User, error) {
	if req.Email == ann.Email {
		return nil, user.ErrEmailAlreadyUsed
	}
	return &user.User{ID: "new", Email: req.Email, Name: req.Name}, nil
}

func (stubUsers) Login(_ context.Context, email, password string) (*user.User, error) {
	if email != ann.Email || password != "password1" {
		return nil, user.ErrInvalidCredentials
	}
	return ann, nil
}

func (stubUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if id != annID {
		return nil, user.ErrNotFound
	}
	return ann, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtManager := auth.NewJWTManager("secret", time.Minute)

	r := gin.New()
	userHttp.RegisterRoutes(r.Group("/v1"), userHttp.NewHandler(stubUsers{}, jwtManager), auth.AuthRequired(jwtManager))
	return r
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodPost, "/v1/users/register", `{"email":"bob@example.com","password":"password1","name":"Bob"}`, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/v1/users/register", `{"email":"ann@example.com","password":"password1","name":"Ann"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"email already used"}`, w.Body.String())

	w = do(r, http.MethodPost, "/v1/users/register", `{"email":"not-an-email","password":"password1","name":"Bob"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginThenMe(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodPost, "/v1/users/login", `{"email":"ann@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/v1/users/login", `{"email":"ann@example.com","password":"password1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login userHttp.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, annID, login.User.ID)

	w = do(r, http.MethodGet, "/v1/users/me", "", login.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	var me userHttp.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "Ann", me.Name)

	w = do(r, http.MethodGet, "/v1/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
