// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{name: "empty list has one page", total: 0, perPage: 8, want: 1},
		{name: "exact fit", total: 16, perPage: 8, want: 2},
		{name: "partial last page", total: 17, perPage: 8, want: 3},
		{name: "non-positive page size is a single page", total: 5, perPage: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageCount(tt.total, tt.perPage))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, clampPage(-1, 20, 8))
	assert.Equal(t, 2, clampPage(5, 20, 8))
	assert.Equal(t, 1, clampPage(1, 20, 8))
	assert.Equal(t, 0, clampPage(3, 0, 8))
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		perPage   int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", total: 20, page: 0, perPage: 8, wantStart: 0, wantEnd: 8},
		{name: "last partial page", total: 20, page: 2, perPage: 8, wantStart: 16, wantEnd: 20},
		{name: "page past the end is clamped", total: 20, page: 9, perPage: 8, wantStart: 16, wantEnd: 20},
		{name: "empty list", total: 0, page: 0, perPage: 8, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pageWindow(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "при...", fitText("привет мир", 6))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "first", firstLine("first\nsecond"))
	assert.Equal(t, "only", firstLine("only"))
}
