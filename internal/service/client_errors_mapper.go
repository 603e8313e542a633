// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-post-mirror/internal/adapter"
	"github.com/MKhiriev/go-post-mirror/internal/app"
	"github.com/MKhiriev/go-post-mirror/internal/state"
)

// knownServerMessages are response bodies of the reference server that are
// short enough to show to the user verbatim.
var knownServerMessages = map[string]struct{}{
	app.MsgInvalidDataProvided:   {},
	app.MsgInvalidPostID:         {},
	app.MsgPostNotFound:          {},
	app.MsgTitleTooLong:          {},
	app.MsgBodyTooLong:           {},
	app.MsgInvalidOwnerRef:       {},
	app.MsgPostAlreadyExists:     {},
	app.MsgStorageUnavailable:    {},
	app.MsgInternalServerError:   {},
	app.MsgVersionIsNotSpecified: {},
}

// rejectionReason renders err as "<action> failed: <detail>".
func rejectionReason(op state.Operation, err error) string {
	return fmt.Sprintf("%s failed: %s", op, describeError(err))
}

// describeError translates an adapter failure into a short user-facing detail.
func describeError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	}

	var remoteErr *adapter.RemoteError
	if !errors.As(err, &remoteErr) {
		return err.Error()
	}

	switch remoteErr.Kind {
	case adapter.KindTransport:
		return "server unreachable: " + remoteErr.Detail
	case adapter.KindDecode:
		return "invalid server response"
	}

	if body := strings.TrimSpace(remoteErr.Detail); body != "" {
		if _, ok := knownServerMessages[body]; ok {
			return body
		}
	}

	return fmt.Sprintf("%v (status %d)", remoteErr.Err, remoteErr.StatusCode)
}
