package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/booking"
	"github.com/nekogravitycat/shareit-backend/internal/comment"
	commentHttp "github.com/nekogravitycat/shareit-backend/internal/comment/http"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

// BookingSummarizer provides the last/next bookings shown on an item.
type BookingSummarizer interface {
	LastAndNext(ctx context.Context, itemID, viewerID string) (last, next *booking.ItemBooking, err error)
}

type CommentLister interface {
	ListByItem(ctx context.Context, itemID string) ([]*comment.Comment, error)
}

type Handler struct {
	service  item.Service
	bookings BookingSummarizer
	comments CommentLister
}

func NewHandler(service item.Service, bookings BookingSummarizer, comments CommentLister) *Handler {
	return &Handler{
		service:  service,
		bookings: bookings,
		comments: comments,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), item.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewItemResponse(it))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid item id", err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	it, err := h.service.Update(c.Request.Context(), auth.GetUserID(c), uri.ID, item.UpdateRequest{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponse(it))
}

// Get returns the item summary. Booking context is only filled in for the owner.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid item id", err)
		return
	}

	ctx := c.Request.Context()
	it, err := h.service.GetByID(ctx, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.summarize(ctx, it, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListOwn returns summaries of the caller's items.
func (h *Handler) ListOwn(c *gin.Context) {
	var req request.PageParams
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	ctx := c.Request.Context()
	userID := auth.GetUserID(c)

	items, err := h.service.ListByOwner(ctx, userID, req.Page())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]ItemSummaryResponse, 0, len(items))
	for _, it := range items {
		summary, err := h.summarize(ctx, it, userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		out = append(out, summary)
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	items, err := h.service.Search(c.Request.Context(), req.Text, req.Page())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewItemResponses(items))
}

func (h *Handler) summarize(ctx context.Context, it *item.Item, viewerID string) (ItemSummaryResponse, error) {
	last, next, err := h.bookings.LastAndNext(ctx, it.ID, viewerID)
	if err != nil {
		return ItemSummaryResponse{}, err
	}
	comments, err := h.comments.ListByItem(ctx, it.ID)
	if err != nil {
		return ItemSummaryResponse{}, err
	}

	return ItemSummaryResponse{
		ItemResponse: NewItemResponse(it),
		LastBooking:  newItemBookingResponse(last),
		NextBooking:  newItemBookingResponse(next),
		Comments:     commentHttp.NewCommentResponses(comments),
	}, nil
}
