// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-post-mirror/internal/state"

// stateChangedMsg carries a store snapshot into the program loop.
type stateChangedMsg struct {
	state state.State
}

type copiedMsg struct {
	err error
}

type clearNoticeMsg struct{}
