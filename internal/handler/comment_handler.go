package handler

import (
	"net/http"
	"strconv"

	"CampusHub/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.ReplyService
}

func NewCommentHandler(svc *service.ReplyService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) List(c *gin.Context) {
	replies, err := h.svc.List()
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]ReplyView, 0, len(replies))
	for i := range replies {
		views = append(views, newReplyView(&replies[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	reply, err := h.svc.Get(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newReplyView(reply))
}
