// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// pageCount returns the number of pages needed for total items, never less
// than one.
func pageCount(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// clampPage keeps a zero-based page index inside [0, pageCount).
func clampPage(page, total, perPage int) int {
	last := pageCount(total, perPage) - 1
	switch {
	case page < 0:
		return 0
	case page > last:
		return last
	default:
		return page
	}
}

// pageWindow returns the half-open index range [start, end) of the items
// shown on page. page is clamped first, so the range is always valid for a
// slice of length total.
func pageWindow(total, page, perPage int) (start, end int) {
	if total <= 0 || perPage <= 0 {
		return 0, 0
	}

	page = clampPage(page, total, perPage)
	start = page * perPage
	end = min(start+perPage, total)
	return start, end
}
