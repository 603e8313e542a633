// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-post-mirror/internal/config"
	"github.com/MKhiriev/go-post-mirror/internal/logger"
	"github.com/MKhiriev/go-post-mirror/internal/utils"
	"github.com/MKhiriev/go-post-mirror/models"
	"github.com/go-resty/resty/v2"
)

const postsPath = "/posts"

type httpPostsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPostsAdapter constructs the HTTP/REST implementation of
// [PostsAdapter]. The base URL from cfg.HTTPAddress is normalised (scheme
// added when missing, trailing slash removed) and every request is bounded
// by cfg.RequestTimeout.
//
// Returns an error if cfg.HTTPAddress is empty or not a valid URL.
func NewHTTPPostsAdapter(cfg config.ClientAdapter, log *logger.Logger) (PostsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	log.Debug().Str("base_url", baseURL).Dur("timeout", cfg.RequestTimeout).Msg("posts adapter created")

	return &httpPostsAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListAll implements [PostsAdapter] with GET /posts.
func (h *httpPostsAdapter) ListAll(ctx context.Context) ([]models.Post, error) {
	resp, err := h.request(ctx).Get(postsPath)
	if err != nil {
		return nil, transportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = decodeBody(resp, &posts); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("count", len(posts)).Msg("posts listed")
	return posts, nil
}

// GetByID implements [PostsAdapter] with GET /posts/{id}.
func (h *httpPostsAdapter) GetByID(ctx context.Context, id int64) (models.Post, error) {
	resp, err := h.request(ctx).Get(postPath(id))
	if err != nil {
		return models.Post{}, transportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = decodeBody(resp, &post); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// Create implements [PostsAdapter] with POST /posts.
func (h *httpPostsAdapter) Create(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		Post(postsPath)
	if err != nil {
		return models.Post{}, transportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = decodeBody(resp, &post); err != nil {
		return models.Post{}, err
	}

	h.logger.Debug().Int64("id", post.ID).Msg("post created")
	return post, nil
}

// Update implements [PostsAdapter] with PUT /posts/{id}.
func (h *httpPostsAdapter) Update(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Put(postPath(id))
	if err != nil {
		return models.Post{}, transportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = decodeBody(resp, &post); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// Remove implements [PostsAdapter] with DELETE /posts/{id}. The response body
// is ignored; any 2xx status is the success marker.
func (h *httpPostsAdapter) Remove(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete(postPath(id))
	if err != nil {
		return transportError(err)
	}

	return mapHTTPError(resp)
}

func (h *httpPostsAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}

func postPath(id int64) string {
	return postsPath + "/" + strconv.FormatInt(id, 10)
}

func decodeBody(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return decodeError(fmt.Errorf("decode %s %s response: %w", resp.Request.Method, resp.Request.URL, err))
	}
	return nil
}
