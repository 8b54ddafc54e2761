package handler

import (
	"net/http"
	"strconv"

	"CampusHub/internal/middleware"
	"CampusHub/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc     *service.CommunityService
	postSvc *service.PostService
}

func NewCommunityHandler(svc *service.CommunityService, postSvc *service.PostService) *CommunityHandler {
	return &CommunityHandler{svc: svc, postSvc: postSvc}
}

func (h *CommunityHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]CommunityView, 0, len(list))
	for i := range list {
		views = append(views, newCommunityView(&list[i]))
	}
	c.JSON(http.StatusOK, views)
}

// Get 社区详情，带成员数
func (h *CommunityHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid community ID"})
		return
	}

	community, memberCount, err := h.svc.Get(id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            community.ID,
		"communityName": community.CommunityName,
		"description":   community.Description,
		"bannerImage":   community.BannerImage,
		"createdAt":     community.CreatedAt,
		"memberCount":   memberCount,
	})
}

// ListPosts 社区帖子列表，时间倒序
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid community ID"})
		return
	}

	posts, images, err := h.postSvc.ListByCommunity(id)
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

// Join 幂等加入：重复加入返回 already_joined，不报错也不产生第二条记录
func (h *CommunityHandler) Join(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid community ID"})
		return
	}

	userID := c.GetUint64(middleware.ContextUserIDKey)

	created, err := h.svc.Join(userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	status := "already_joined"
	if created {
		status = "joined"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Search 社区名大小写不敏感的子串查询
func (h *CommunityHandler) Search(c *gin.Context) {
	query := c.Query("query")

	list, err := h.svc.Search(query)
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]CommunityView, 0, len(list))
	for i := range list {
		views = append(views, newCommunityView(&list[i]))
	}
	c.JSON(http.StatusOK, views)
}
