package handler

import (
	"net/http"
	"strconv"

	"CampusHub/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	Type        string   `json:"type" validate:"required,oneof=question advice"`
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	AuthorID    uint64   `json:"authorId" validate:"required"`
	CommunityID uint64   `json:"communityId" validate:"required"`
	Images      []string `json:"images" validate:"omitempty,dive,required"`
}

type ReplyReq struct {
	Content  string `json:"content" validate:"required"`
	AuthorID uint64 `json:"authorId" validate:"required"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, images, err := h.svc.List()
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, newPostView(&posts[i], images[posts[i].ID], nil))
	}
	c.JSON(http.StatusOK, views)
}

// Create 创建帖子：图片先全部传到对象存储，再和帖子同事务落库
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostReq
	if !bindAndValidate(c, &req) {
		return
	}

	post, images, err := h.svc.Create(c.Request.Context(), service.CreatePostInput{
		Type:        req.Type,
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    req.AuthorID,
		CommunityID: req.CommunityID,
		Images:      req.Images,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, newPostView(post, images, nil))
}

// Get 帖子详情，comments 填充回复（时间正序）
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, images, replies, err := h.svc.Get(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newPostView(post, images, replies))
}

func (h *PostHandler) Reply(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req ReplyReq
	if !bindAndValidate(c, &req) {
		return
	}

	reply, err := h.svc.Reply(postID, req.AuthorID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "reply recorded", "reply": newReplyView(reply)})
}

// Upvote 无条件原子 +1，同一用户重复点赞不做去重（刻意行为）
func (h *PostHandler) Upvote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	upvotes, err := h.svc.Upvote(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"upvotes": upvotes})
}
