package handler

import (
	"errors"
	"net/http"

	"CampusHub/internal/middleware"
	"CampusHub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.UserService
}

type RegisterReq struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone" validate:"omitempty"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileReq 部分更新，指针区分"没传"和"传了空值"
type UpdateProfileReq struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty"`
}

type PhotoReq struct {
	Image string `json:"image" validate:"required"` // base64，可带 data-URI 前缀
}

func NewAuthHandler(svc *service.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register 注册接口：校验全部字段后建号并直接签发 token
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if !bindAndValidate(c, &req) {
		return
	}

	user, token, err := h.svc.Register(service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": newUserView(user), "token": token})
}

// Login 登录接口：邮箱不存在和密码错误返回完全相同的 401
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if !bindAndValidate(c, &req) {
		return
	}

	user, token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserView(user), "token": token})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint64(middleware.ContextUserIDKey)

	user, err := h.svc.GetByID(userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserView(user)})
}

// UpdateProfile 只更新请求里出现的字段
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint64(middleware.ContextUserIDKey)

	var req UpdateProfileReq
	if !bindAndValidate(c, &req) {
		return
	}

	updates := make(map[string]any)
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	user, err := h.svc.UpdateProfile(userID, updates)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserView(user)})
}

// UpdatePhoto 上传头像到对象存储并写回 profileImage
func (h *AuthHandler) UpdatePhoto(c *gin.Context) {
	userID := c.GetUint64(middleware.ContextUserIDKey)

	var req PhotoReq
	if !bindAndValidate(c, &req) {
		return
	}

	url, err := h.svc.UpdatePhoto(c.Request.Context(), userID, req.Image)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
