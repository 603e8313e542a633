// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"strconv"

	"github.com/MKhiriev/go-post-mirror/models"
)

// Status is the derived UI flag of the store.
type Status int

const (
	Idle Status = iota
	Pending
	Succeeded
	Failed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Success messages set by fulfilled mutations.
const (
	MessageCreated = "Post created successfully!"
	MessageUpdated = "Post updated successfully!"
	MessageDeleted = "Post deleted successfully!"
)

// State is one immutable snapshot of the client view.
type State struct {
	// Items is the cached list in server order; ids are unique.
	Items []models.Post
	// Selected is the post currently viewed, nil when nothing is.
	Selected *models.Post
	Status   Status
	// Message is the failure reason when Status is Failed, or a success
	// notice after a fulfilled mutation.
	Message string
	// Revision counts the events applied by the owning [Store].
	Revision uint64
}

// Initial returns the empty state: no items, no selection, Idle.
func Initial() State {
	return State{Items: []models.Post{}, Status: Idle}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Items = clonePosts(s.Items)
	if s.Selected != nil {
		selected := s.Selected.Clone()
		out.Selected = &selected
	}
	return out
}

// Find returns the cached item with the given id.
func (s State) Find(id int64) (models.Post, bool) {
	if i := indexOf(s.Items, id); i >= 0 {
		return s.Items[i], true
	}
	return models.Post{}, false
}

// Operation names a coordinated CRUD operation.
type Operation int

const (
	OpFetchAll Operation = iota + 1
	OpFetchOne
	OpCreate
	OpUpdate
	OpDelete
)

// String returns the verb used in user-facing rejection reasons.
func (o Operation) String() string {
	switch o {
	case OpFetchAll:
		return "fetch posts"
	case OpFetchOne:
		return "fetch post"
	case OpCreate:
		return "create post"
	case OpUpdate:
		return "update post"
	case OpDelete:
		return "delete post"
	default:
		return "operation"
	}
}

// Phase is the lifecycle stage of an operation event.
type Phase int

const (
	PhasePending Phase = iota + 1
	PhaseFulfilled
	PhaseRejected
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseFulfilled:
		return "fulfilled"
	case PhaseRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Kind separates operation lifecycle events from store-local events.
type Kind int

const (
	KindOperation Kind = iota + 1
	KindNavigatedAway
	KindMessageDismissed
)

// ListIdentity is the request identity shared by every list fetch.
const ListIdentity = "list"

// PostIdentity returns the request identity of operations on post id.
func PostIdentity(id int64) string {
	return "post:" + strconv.FormatInt(id, 10)
}

// Event is one input of [Reduce].
type Event struct {
	Kind  Kind
	Op    Operation
	Phase Phase

	// Token is the request token of the invocation that produced the event.
	Token uint64
	// Identity groups invocations that target the same data. Empty means the
	// event is never considered stale.
	Identity string

	// Posts is the payload of a fulfilled fetchAll.
	Posts []models.Post
	// Post is the payload of a fulfilled fetchOne, create or update.
	Post models.Post
	// ID is the target of fetchOne, update and delete.
	ID int64
	// Reason is the payload of a rejection.
	Reason string
}

// IsTerminal reports whether e settles an operation.
func (e Event) IsTerminal() bool {
	return e.Kind == KindOperation && (e.Phase == PhaseFulfilled || e.Phase == PhaseRejected)
}

// OperationPending marks the start of an invocation of op.
func OperationPending(op Operation, identity string, token uint64) Event {
	return Event{Kind: KindOperation, Op: op, Phase: PhasePending, Identity: identity, Token: token}
}

// OperationRejected settles an invocation of op with a failure reason.
func OperationRejected(op Operation, identity string, token uint64, reason string) Event {
	return Event{Kind: KindOperation, Op: op, Phase: PhaseRejected, Identity: identity, Token: token, Reason: reason}
}

// FetchAllFulfilled carries the server's full list.
func FetchAllFulfilled(token uint64, posts []models.Post) Event {
	return Event{Kind: KindOperation, Op: OpFetchAll, Phase: PhaseFulfilled, Identity: ListIdentity, Token: token, Posts: posts}
}

// FetchOneFulfilled carries post id as returned by the server.
func FetchOneFulfilled(token uint64, id int64, post models.Post) Event {
	return Event{Kind: KindOperation, Op: OpFetchOne, Phase: PhaseFulfilled, Identity: PostIdentity(id), Token: token, Post: post, ID: id}
}

// CreateFulfilled carries the server copy of a created post.
func CreateFulfilled(token uint64, post models.Post) Event {
	return Event{Kind: KindOperation, Op: OpCreate, Phase: PhaseFulfilled, Token: token, Post: post, ID: post.ID}
}

// UpdateFulfilled carries the server copy of post id after an update.
func UpdateFulfilled(token uint64, id int64, post models.Post) Event {
	return Event{Kind: KindOperation, Op: OpUpdate, Phase: PhaseFulfilled, Identity: PostIdentity(id), Token: token, Post: post, ID: id}
}

// DeleteFulfilled confirms the removal of post id.
func DeleteFulfilled(token uint64, id int64) Event {
	return Event{Kind: KindOperation, Op: OpDelete, Phase: PhaseFulfilled, Identity: PostIdentity(id), Token: token, ID: id}
}

// NavigatedAway is dispatched when the user leaves the detail view.
func NavigatedAway() Event {
	return Event{Kind: KindNavigatedAway}
}

// MessageDismissed is dispatched when the user acknowledges a success notice.
func MessageDismissed() Event {
	return Event{Kind: KindMessageDismissed}
}
