// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message constants shared by the posts server handlers
// and the client error mapping.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. The client recognises them to turn a failed response into a short
// rejection reason, so the wording is part of the wire contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a post payload.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidPostID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidPostID = "invalid post id"

	// MsgPostNotFound is returned when no post has the requested id.
	MsgPostNotFound = "post not found"

	// MsgTitleTooLong is returned when a title exceeds the accepted length.
	MsgTitleTooLong = "title is too long"

	// MsgBodyTooLong is returned when a body exceeds the accepted length.
	MsgBodyTooLong = "body is too long"

	// MsgInvalidOwnerRef is returned when a create request carries a
	// non-positive userId.
	MsgInvalidOwnerRef = "invalid owner reference"

	// MsgPostAlreadyExists is returned when storage rejects a duplicate key.
	MsgPostAlreadyExists = "post already exists"

	// MsgStorageUnavailable is returned when the database keeps failing with
	// retryable errors.
	MsgStorageUnavailable = "storage temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgVersionIsNotSpecified is returned by GET /version when the server
	// was started without a version.
	MsgVersionIsNotSpecified = "version is not specified"
)
