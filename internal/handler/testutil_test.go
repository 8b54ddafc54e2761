package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"CampusHub/internal/model"
	"CampusHub/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUploader struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (f *fakeUploader) Upload(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", fmt.Errorf("blob service unavailable")
	}
	f.calls++
	return fmt.Sprintf("https://blob.test/post-images/img-%d.jpg", f.calls), nil
}

func (f *fakeUploader) UploadMany(ctx context.Context, images []string) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := f.Upload(ctx, img)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *fakeUploader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// 内存库：多连接会各拿到一份独立数据库，必须收敛到单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Post{},
		&model.Reply{},
		&model.PostImage{},
	))

	uploader := &fakeUploader{}
	return router.InitRouter(db, uploader), db, uploader
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, r *gin.Engine, email string) (userID uint64, token string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"firstName": "Demo",
		"lastName":  "User",
		"email":     email,
		"password":  "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	token = body["token"].(string)
	user := body["user"].(map[string]any)
	return uint64(user["id"].(float64)), token
}
