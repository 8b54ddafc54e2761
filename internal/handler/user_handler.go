package handler

import (
	"net/http"
	"strconv"

	"CampusHub/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]UserDetailView, 0, len(users))
	for i := range users {
		views = append(views, newUserDetailView(&users[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.svc.GetByID(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newUserDetailView(user))
}
