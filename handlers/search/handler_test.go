package search

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/i7even3/fansnap/models"
	"github.com/i7even3/fansnap/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestSearchUsers_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	createdAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_name", "bio", "created_at"}).
		AddRow("user-uuid-1", "ana", "painter and art lover", createdAt)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE user_name ILIKE \$1 OR bio ILIKE \$2`).
		WithArgs("%art%", "%art%").
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/search/users", SearchUsers)

	req, _ := http.NewRequest(http.MethodGet, "/search/users?q=art", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var users []models.User
	json.Unmarshal(resp.Body.Bytes(), &users)
	assert.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].UserName)
}

func TestSearchUsers_MissingQuery(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/search/users", SearchUsers)

	req, _ := http.NewRequest(http.MethodGet, "/search/users", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSearchPosts_MatchesContentAndTags(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	createdAt := time.Now()
	rows := sqlmock.NewRows([]string{"id", "creator_id", "content", "tags", "created_at"}).
		AddRow("post-1", "user-uuid-1", "new art drop", []byte(`["painting"]`), createdAt).
		AddRow("post-2", "user-uuid-1", "weekly update", []byte(`["art"]`), createdAt)

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE content ILIKE \$1 OR tags::text ILIKE \$2`).
		WithArgs("%ART%", "%ART%").
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/search/posts", SearchPosts)

	req, _ := http.NewRequest(http.MethodGet, "/search/posts?q=ART", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var posts []models.Post
	json.Unmarshal(resp.Body.Bytes(), &posts)
	assert.Len(t, posts, 2)
	assert.Contains(t, posts[0].Content, "art")
	assert.Contains(t, posts[1].Tags, "art")
}

func TestSearchPosts_MissingQuery(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/search/posts", SearchPosts)

	req, _ := http.NewRequest(http.MethodGet, "/search/posts", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
