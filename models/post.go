// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types shared between the client runtime,
// the transport adapter and the reference posts server.
package models

// Post is one record of the remote posts collection.
//
// ID is assigned by the server and is the stable identity of the record.
// OwnerRef is set on creation and is not independently mutable by the client;
// it travels on the wire as "userId" so that the client speaks the same
// dialect as public JSONPlaceholder-style services.
type Post struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Body     string `json:"body" db:"body"`
	OwnerRef *int64 `json:"userId,omitempty" db:"owner_ref"`
}

// PostDraft is the payload of a create request. The server assigns the ID.
type PostDraft struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	OwnerRef *int64 `json:"userId,omitempty"`
}

// PostPatch is the payload of an update request. Updates have full-record
// replace semantics for the mutable fields.
type PostPatch struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Clone returns a copy of p that does not share the OwnerRef pointer.
func (p Post) Clone() Post {
	if p.OwnerRef != nil {
		owner := *p.OwnerRef
		p.OwnerRef = &owner
	}
	return p
}

// Equal reports whether p and other carry the same server representation.
func (p Post) Equal(other Post) bool {
	if p.ID != other.ID || p.Title != other.Title || p.Body != other.Body {
		return false
	}
	switch {
	case p.OwnerRef == nil && other.OwnerRef == nil:
		return true
	case p.OwnerRef == nil || other.OwnerRef == nil:
		return false
	default:
		return *p.OwnerRef == *other.OwnerRef
	}
}

// OwnerRefOf returns a pointer to a copy of id, convenient for filling
// [Post.OwnerRef] and [PostDraft.OwnerRef].
func OwnerRefOf(id int64) *int64 {
	return &id
}
