// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-mirror/internal/app"
	"github.com/MKhiriev/go-post-mirror/internal/service"
	"github.com/MKhiriev/go-post-mirror/internal/store"
	"github.com/MKhiriev/go-post-mirror/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order; the validator sentinels come before the
// service sentinel that wraps them.
var errorResponses = []errorResponse{
	{ErrInvalidPostIDParam, http.StatusBadRequest, app.MsgInvalidPostID},
	{ErrInvalidRequestBody, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{validators.ErrInvalidPostID, http.StatusBadRequest, app.MsgInvalidPostID},
	{validators.ErrTitleTooLong, http.StatusBadRequest, app.MsgTitleTooLong},
	{validators.ErrBodyTooLong, http.StatusBadRequest, app.MsgBodyTooLong},
	{validators.ErrInvalidOwnerRef, http.StatusBadRequest, app.MsgInvalidOwnerRef},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrPostNotFound, http.StatusNotFound, app.MsgPostNotFound},
	{store.ErrPostAlreadyExists, http.StatusConflict, app.MsgPostAlreadyExists},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

// statusFromError returns the HTTP status and response message for err.
// Unknown errors are internal server errors.
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
