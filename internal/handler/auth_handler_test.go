package handler_test

import (
	"net/http"
	"testing"

	"CampusHub/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenMe(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"firstName": "Demo",
		"lastName":  "User",
		"email":     "demo@calvin.edu",
		"password":  "password123",
		"phone":     "+1 (555) 123-4567",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	user := body["user"].(map[string]any)
	assert.Equal(t, "demo@calvin.edu", user["email"])
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, w.Body.String(), "password")

	// 刚签发的 token 必须能通过 /auth/me
	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "demo@calvin.edu", me["email"])
	assert.Equal(t, "Demo", me["firstName"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, db, _ := newTestRouter(t)

	payload := gin.H{
		"firstName": "Demo",
		"lastName":  "User",
		"email":     "demo@calvin.edu",
		"password":  "password123",
	}
	w := doJSON(t, r, http.MethodPost, "/auth/register", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("email = ?", "demo@calvin.edu").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterValidationListsEveryField(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email":    "not-an-email",
		"password": "abc",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	fieldErrors := decodeBody(t, w)["error"].(map[string]any)["fieldErrors"].(map[string]any)
	assert.Contains(t, fieldErrors, "firstName")
	assert.Contains(t, fieldErrors, "lastName")
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "password")
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, _, _ := newTestRouter(t)
	registerUser(t, r, "demo@calvin.edu")

	// 密码错误和邮箱不存在必须返回一模一样的 401
	wrongPassword := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "demo@calvin.edu",
		"password": "wrong-password",
	}, "")
	unknownEmail := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "nobody@calvin.edu",
		"password": "password123",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginSuccess(t *testing.T) {
	r, _, _ := newTestRouter(t)
	registerUser(t, r, "demo@calvin.edu")

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "demo@calvin.edu",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "demo@calvin.edu", body["user"].(map[string]any)["email"])
}

func TestMeRequiresToken(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfilePartial(t *testing.T) {
	r, _, _ := newTestRouter(t)
	_, token := registerUser(t, r, "demo@calvin.edu")

	w := doJSON(t, r, http.MethodPut, "/auth/profile", gin.H{
		"firstName": "Renamed",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "Renamed", user["firstName"])
	// 没传的字段保持原值
	assert.Equal(t, "User", user["lastName"])
	assert.Equal(t, "demo@calvin.edu", user["email"])
}

func TestUpdatePhoto(t *testing.T) {
	r, _, _ := newTestRouter(t)
	_, token := registerUser(t, r, "demo@calvin.edu")

	w := doJSON(t, r, http.MethodPut, "/auth/photo", gin.H{
		"image": "data:image/jpeg;base64,aGVsbG8=",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	url := decodeBody(t, w)["url"].(string)
	assert.Equal(t, "https://blob.test/post-images/img-1.jpg", url)

	// URL 已写回用户资料
	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, url, me["profileImage"])
}

func TestUpdatePhotoUploadFailure(t *testing.T) {
	r, _, uploader := newTestRouter(t)
	_, token := registerUser(t, r, "demo@calvin.edu")

	uploader.fail = true
	w := doJSON(t, r, http.MethodPut, "/auth/photo", gin.H{
		"image": "aGVsbG8=",
	}, token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
