// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-post-mirror/internal/app"
	"github.com/MKhiriev/go-post-mirror/internal/service"
	"github.com/MKhiriev/go-post-mirror/internal/store"
	"github.com/MKhiriev/go-post-mirror/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error wrapped by service",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrBodyTooLong),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgBodyTooLong,
		},
		{
			name:       "bare service validation error",
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("get: %w", store.ErrPostNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    app.MsgPostNotFound,
		},
		{
			name:       "scan failure",
			err:        fmt.Errorf("%w: boom", store.ErrScanningRow),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name:       "unknown",
			err:        errors.New("unknown"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
