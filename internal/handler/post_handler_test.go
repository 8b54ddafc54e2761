package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"CampusHub/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostWithImages(t *testing.T) {
	r, db, _ := newTestRouter(t)
	seedCommunity(t, db, "RVD")
	userID, _ := registerUser(t, r, "demo@calvin.edu")

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"type":        "question",
		"title":       "Where is the lounge located?",
		"content":     "Cannot find it.",
		"authorId":    userID,
		"communityId": 1,
		"images":      []string{"aGVsbG8=", "d29ybGQ="},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, fmt.Sprintf("%d", userID), body["authorId"]) // 字符串形式
	assert.Equal(t, "question", body["type"])
	assert.NotNil(t, body["timePosted"])

	images := body["images"].([]any)
	require.Len(t, images, 2)
	// 上传顺序与返回顺序一致
	assert.Equal(t, "https://blob.test/post-images/img-1.jpg", images[0])
	assert.Equal(t, "https://blob.test/post-images/img-2.jpg", images[1])

	var count int64
	require.NoError(t, db.Model(&model.PostImage{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCreatePostUploadFailureLeavesNothing(t *testing.T) {
	r, db, uploader := newTestRouter(t)
	seedCommunity(t, db, "RVD")
	userID, _ := registerUser(t, r, "demo@calvin.edu")

	uploader.fail = true
	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"type":        "advice",
		"title":       "t",
		"content":     "c",
		"authorId":    userID,
		"communityId": 1,
		"images":      []string{"aGVsbG8="},
	}, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// 上传失败时帖子也不能落库
	var count int64
	require.NoError(t, db.Model(&model.Post{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreatePostValidation(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"type":    "rant", // 不在枚举里
		"title":   "",
		"content": "c",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	fieldErrors := decodeBody(t, w)["error"].(map[string]any)["fieldErrors"].(map[string]any)
	assert.Contains(t, fieldErrors, "type")
	assert.Contains(t, fieldErrors, "title")
	assert.Contains(t, fieldErrors, "authorId")
	assert.Contains(t, fieldErrors, "communityId")
}

func createPost(t *testing.T, r *gin.Engine, userID uint64, title string) uint64 {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"type":        "question",
		"title":       title,
		"content":     "content",
		"authorId":    userID,
		"communityId": 1,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	return uint64(decodeBody(t, w)["id"].(float64))
}

func TestGetPostWithReplies(t *testing.T) {
	r, db, _ := newTestRouter(t)
	seedCommunity(t, db, "RVD")
	userID, _ := registerUser(t, r, "demo@calvin.edu")
	postID := createPost(t, r, userID, "Where is the lounge located?")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/reply", postID), gin.H{
		"content":  "Second floor, next to the kitchen!",
		"authorId": userID,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "reply recorded", body["status"])
	assert.NotNil(t, body["reply"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/posts/%d", postID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeBody(t, w)
	comments := view["comments"].([]any)
	require.Len(t, comments, 1)
	reply := comments[0].(map[string]any)
	assert.Equal(t, "Second floor, next to the kitchen!", reply["content"])
}

func TestGetPostNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/posts/999999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestUpvoteIncrementsExactly(t *testing.T) {
	r, db, _ := newTestRouter(t)
	seedCommunity(t, db, "RVD")
	userID, _ := registerUser(t, r, "demo@calvin.edu")
	postID := createPost(t, r, userID, "upvote me")

	const n = 10
	var last float64
	for i := 0; i < n; i++ {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/posts/%d/upvote", postID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		last = decodeBody(t, w)["upvotes"].(float64)
	}
	assert.EqualValues(t, n, last)

	var post model.Post
	require.NoError(t, db.First(&post, postID).Error)
	assert.EqualValues(t, n, post.Upvotes)
}

func TestUpvoteUnknownPost(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/posts/424242/upvote", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplyToUnknownPost(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/posts/424242/reply", gin.H{
		"content":  "hello?",
		"authorId": 1,
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPosts(t *testing.T) {
	r, db, _ := newTestRouter(t)
	seedCommunity(t, db, "RVD")
	userID, _ := registerUser(t, r, "demo@calvin.edu")
	createPost(t, r, userID, "first")
	createPost(t, r, userID, "second")

	w := doJSON(t, r, http.MethodGet, "/posts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
}
