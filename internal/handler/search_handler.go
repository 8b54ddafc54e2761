package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct{}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

type searchCommunity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Members int    `json:"members"`
}

type searchPost struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Community string `json:"community"`
	Tag       string `json:"tag"`
}

// 演示用静态数据，不接真实数据源（保持原行为，见 DESIGN.md）
var demoCommunities = []searchCommunity{
	{ID: "1", Name: "Gaming Community", Members: 1200},
	{ID: "2", Name: "Book Club", Members: 500},
	{ID: "3", Name: "Tech Hub", Members: 2500},
}

var demoPosts = []searchPost{
	{ID: "1", Title: "Latest Gaming News", Community: "Gaming Community", Tag: "news"},
	{ID: "2", Title: "Book of the Month", Community: "Book Club", Tag: "discussion"},
	{ID: "3", Title: "Tech Trends 2025", Community: "Tech Hub", Tag: "technology"},
}

// Search 对演示数据做大小写不敏感的子串过滤
func (h *SearchHandler) Search(c *gin.Context) {
	q := strings.ToLower(c.Query("query"))

	communities := make([]searchCommunity, 0)
	for _, sc := range demoCommunities {
		if strings.Contains(strings.ToLower(sc.Name), q) {
			communities = append(communities, sc)
		}
	}

	posts := make([]searchPost, 0)
	for _, sp := range demoPosts {
		if strings.Contains(strings.ToLower(sp.Title), q) ||
			strings.Contains(strings.ToLower(sp.Tag), q) ||
			strings.Contains(strings.ToLower(sp.Community), q) {
			posts = append(posts, sp)
		}
	}

	c.JSON(http.StatusOK, gin.H{"communities": communities, "posts": posts})
}
