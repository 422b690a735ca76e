package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", opts...)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin_StoresTokenAndSession(t *testing.T) {
	session, err := LoadSession(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin", body["username"])
			writeJSON(w, http.StatusOK, AuthResponse{Token: "tok", User: &User{ID: "u1", Username: "admin", Role: "admin"}})
		case "/api/users/me":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, User{ID: "u1", Username: "admin", Role: "admin"})
		default:
			http.NotFound(w, r)
		}
	}, WithSession(session))

	resp, err := c.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "tok", c.Token())
	assert.True(t, session.LoggedIn())

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, me.IsAdmin())

	reloaded, err := LoadSession(session.path)
	require.NoError(t, err)
	assert.Equal(t, "tok", reloaded.Token)
	assert.Equal(t, "u1", reloaded.User.ID)

	require.NoError(t, c.Logout())
	assert.Empty(t, c.Token())
	assert.False(t, session.LoggedIn())

	reloaded, err = LoadSession(session.path)
	require.NoError(t, err)
	assert.False(t, reloaded.LoggedIn())
}

func TestAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "lecture not found", "code": "NOT_FOUND"})
	})

	_, err := c.GetLecture(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "lecture not found", apiErr.Message)
}

func TestAPIError_PlainBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ListLectures(context.Background(), ListOptions{})
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
	assert.Contains(t, err.Error(), "Bad Gateway")
}

func TestListLectures_Query(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "신학과정", q.Get("category"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "series", q.Get("sortBy"))
		assert.False(t, q.Has("pageSize"))
		writeJSON(w, http.StatusOK, LecturePage{
			Items:      []LectureSummary{{ID: "l1"}},
			Pagination: Pagination{CurrentPage: 2, TotalPages: 3},
		})
	})

	page, err := c.ListLectures(context.Background(), ListOptions{Category: "신학과정", Page: 2, SortBy: "series"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestCreateLecture_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "요한복음", r.FormValue("series"))
		_, sent := r.MultipartForm.Value["description"]
		assert.False(t, sent)

		files := r.MultipartForm.File["materials"]
		require.Len(t, files, 1)
		assert.Equal(t, "notes.pdf", files[0].Filename)
		f, err := files[0].Open()
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		assert.Equal(t, "%PDF", string(data))

		writeJSON(w, http.StatusCreated, Lecture{ID: "l1", Series: r.FormValue("series"), Materials: []Material{{Name: "notes.pdf"}}})
	}, WithSession(&Session{Token: "admin-token"}))

	lecture, err := c.CreateLecture(context.Background(),
		LectureForm{Category: "신학과정", Series: "요한복음", Number: "1", Instructor: "김목사"},
		File{Name: "notes.pdf", Content: strings.NewReader("%PDF")},
	)
	require.NoError(t, err)
	assert.Equal(t, "l1", lecture.ID)
	assert.Len(t, lecture.Materials, 1)
}

func TestUpdateAndDeleteLecture(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lectures/l1", r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, []string{"01:10:00"}, r.MultipartForm.Value["duration"])
			assert.Len(t, r.MultipartForm.Value, 1)
			writeJSON(w, http.StatusOK, Lecture{ID: "l1", Duration: "01:10:00"})
		case http.MethodDelete:
			writeJSON(w, http.StatusOK, DeleteResponse{Deleted: true, ID: "l1"})
		}
	})
	c.SetToken("t")

	lecture, err := c.UpdateLecture(context.Background(), "l1", LectureForm{Duration: "01:10:00"})
	require.NoError(t, err)
	assert.Equal(t, "01:10:00", lecture.Duration)

	assert.NoError(t, c.DeleteLecture(context.Background(), "l1"))
}

func TestRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusCreated, User{ID: "u2", Username: req.Username, DisplayName: req.DisplayName, Role: "member"})
	})

	user, err := c.Register(context.Background(), RegisterRequest{Username: "kim", Password: "1234", DisplayName: "김철수"})
	require.NoError(t, err)
	assert.Equal(t, "김철수", user.DisplayName)
	assert.False(t, user.IsAdmin())
}
