// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-post-mirror/internal/app"
	"github.com/MKhiriev/go-post-mirror/internal/store"
	"github.com/MKhiriev/go-post-mirror/internal/validators"
	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodePost(t *testing.T, body []byte) models.Post {
	t.Helper()
	var post models.Post
	require.NoError(t, json.Unmarshal(body, &post))
	return post
}

// ---- GET /posts ----

func TestListPosts(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().List(gomock.Any()).Return([]models.Post{
		{ID: 1, Title: "a", Body: "x", OwnerRef: models.OwnerRefOf(1)},
		{ID: 2, Title: "b", Body: "y"},
	}, nil)

	rec := serve(t, router, http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":1,"title":"a","body":"x","userId":1},{"id":2,"title":"b","body":"y"}]`, rec.Body.String())
}

func TestListPosts_EmptyIsArray(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().List(gomock.Any()).Return([]models.Post{}, nil)

	rec := serve(t, router, http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPosts_StorageUnavailable(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, store.ErrStorageUnavailable)

	rec := serve(t, router, http.MethodGet, "/posts", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, app.MsgStorageUnavailable, strings.TrimSpace(rec.Body.String()))
}

// ---- GET /posts/{id} ----

func TestGetPost(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().Get(gomock.Any(), int64(7)).Return(models.Post{ID: 7, Title: "seven"}, nil)

	rec := serve(t, router, http.MethodGet, "/posts/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "seven", decodePost(t, rec.Body.Bytes()).Title)
}

func TestGetPost_NotFound(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().Get(gomock.Any(), int64(404)).Return(models.Post{}, store.ErrPostNotFound)

	rec := serve(t, router, http.MethodGet, "/posts/404", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgPostNotFound, strings.TrimSpace(rec.Body.String()))
}

func TestGetPost_InvalidID(t *testing.T) {
	for _, path := range []string{"/posts/abc", "/posts/0", "/posts/-3"} {
		t.Run(path, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(t, router, http.MethodGet, path, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidPostID, strings.TrimSpace(rec.Body.String()))
		})
	}
}

// ---- POST /posts ----

func TestCreatePost(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().
		Create(gomock.Any(), models.PostDraft{Title: "t", Body: "b", OwnerRef: models.OwnerRefOf(1)}).
		Return(models.Post{ID: 101, Title: "t", Body: "b", OwnerRef: models.OwnerRefOf(1)}, nil)

	rec := serve(t, router, http.MethodPost, "/posts", `{"title":"t","body":"b","userId":1}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(101), decodePost(t, rec.Body.Bytes()).ID)
}

func TestCreatePost_ClientSuppliedIDIgnored(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().
		Create(gomock.Any(), models.PostDraft{Title: "t"}).
		Return(models.Post{ID: 5, Title: "t"}, nil)

	rec := serve(t, router, http.MethodPost, "/posts", `{"id":999,"title":"t"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(5), decodePost(t, rec.Body.Bytes()).ID)
}

func TestCreatePost_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "empty body", body: "", wantMsg: app.MsgInvalidDataProvided},
		{name: "malformed json", body: `{"title":`, wantMsg: app.MsgInvalidDataProvided},
		{name: "unknown field", body: `{"color":"red"}`, wantMsg: app.MsgInvalidDataProvided},
		{name: "title too long", body: `{"title":"` + strings.Repeat("t", validators.MaxTitleLength+1) + `"}`, wantMsg: app.MsgTitleTooLong},
		{name: "non-positive owner", body: `{"title":"t","userId":0}`, wantMsg: app.MsgInvalidOwnerRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(t, router, http.MethodPost, "/posts", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestCreatePost_Conflict(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrPostAlreadyExists)

	rec := serve(t, router, http.MethodPost, "/posts", `{"title":"t"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ---- PUT /posts/{id} ----

func TestUpdatePost(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().
		Update(gomock.Any(), int64(3), models.PostPatch{Title: "new", Body: "nb"}).
		Return(models.Post{ID: 3, Title: "new", Body: "nb", OwnerRef: models.OwnerRefOf(1)}, nil)

	rec := serve(t, router, http.MethodPut, "/posts/3", `{"id":3,"title":"new","body":"nb","userId":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	post := decodePost(t, rec.Body.Bytes())
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "nb", post.Body)
}

func TestUpdatePost_NotFound(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(models.Post{}, store.ErrPostNotFound)

	rec := serve(t, router, http.MethodPut, "/posts/3", `{"title":"new"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePost_InvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(t, router, http.MethodPut, "/posts/x", `{"title":"new"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidPostID, strings.TrimSpace(rec.Body.String()))
}

// ---- DELETE /posts/{id} ----

func TestDeletePost(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

	rec := serve(t, router, http.MethodDelete, "/posts/3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestDeletePost_InternalError(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(errors.New("disk on fire"))

	rec := serve(t, router, http.MethodDelete, "/posts/3", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, strings.TrimSpace(rec.Body.String()))
}

// ---- routing ----

func TestInit_WrongMethodReturns404(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/posts"},
		{http.MethodDelete, "/posts"},
		{http.MethodPost, "/posts/1"},
		{http.MethodPost, "/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(t, router, tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(t, router, http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_TraceIDHeaderAlwaysSet(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.EXPECT().List(gomock.Any()).Return([]models.Post{}, nil)

	rec := serve(t, router, http.MethodGet, "/posts", "")

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
