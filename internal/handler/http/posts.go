// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/utils"
	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/go-chi/chi/v5"
)

// postRequest is the body of POST and PUT requests. ID is accepted so that
// clients echoing the full record are not rejected; it is never trusted.
type postRequest struct {
	ID       *int64 `json:"id,omitempty"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	OwnerRef *int64 `json:"userId,omitempty"`
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listPosts")
		return
	}

	h.writeJSON(w, r, posts, http.StatusOK, "*Handler.listPosts")
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getPost")
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getPost")
		return
	}

	h.writeJSON(w, r, post, http.StatusOK, "*Handler.getPost")
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err), "*Handler.createPost")
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), models.PostDraft{
		Title:    req.Title,
		Body:     req.Body,
		OwnerRef: req.OwnerRef,
	})
	if err != nil {
		h.writeError(w, r, err, "*Handler.createPost")
		return
	}

	h.writeJSON(w, r, post, http.StatusCreated, "*Handler.createPost")
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updatePost")
		return
	}

	var req postRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err), "*Handler.updatePost")
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), id, models.PostPatch{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.writeError(w, r, err, "*Handler.updatePost")
		return
	}

	h.writeJSON(w, r, post, http.StatusOK, "*Handler.updatePost")
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postIDParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deletePost")
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		h.writeError(w, r, err, "*Handler.deletePost")
		return
	}

	h.writeJSON(w, r, struct{}{}, http.StatusOK, "*Handler.deletePost")
}

func postIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPostIDParam, raw)
	}
	return id, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	http.Error(w, message, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int, funcName string) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
