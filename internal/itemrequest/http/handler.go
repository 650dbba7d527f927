package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/auth"
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

type AnswerLister interface {
	ListByRequest(ctx context.Context, requestIDs ...string) ([]*item.Item, error)
}

type Handler struct {
	service itemrequest.Service
	answers AnswerLister
}

func NewHandler(service itemrequest.Service, answers AnswerLister) *Handler {
	return &Handler{service: service, answers: answers}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	req, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRequestResponses([]*itemrequest.ItemRequest{req}, nil)[0])
}

// ListOwn returns the caller's requests, newest first.
func (h *Handler) ListOwn(c *gin.Context) {
	requests, err := h.service.ListOwn(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.respond(c, requests)
}

// ListOthers returns a page of requests made by other users.
func (h *Handler) ListOthers(c *gin.Context) {
	var page request.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	requests, err := h.service.ListOthers(c.Request.Context(), auth.GetUserID(c), page.Page())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.respond(c, requests)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request id", err)
		return
	}

	req, err := h.service.GetByID(c.Request.Context(), auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	answers, err := h.answers.ListByRequest(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestResponses([]*itemrequest.ItemRequest{req}, answers)[0])
}

// respond loads the answers for all requests in one query.
func (h *Handler) respond(c *gin.Context, requests []*itemrequest.ItemRequest) {
	ids := make([]string, len(requests))
	for i, req := range requests {
		ids[i] = req.ID
	}

	answers, err := h.answers.ListByRequest(c.Request.Context(), ids...)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestResponses(requests, answers))
}
