// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "github.com/MKhiriev/go-post-mirror/models"

// Reduce returns the state that follows s after e. It never mutates s and
// never fails; unknown events return s unchanged.
func Reduce(s State, e Event) State {
	switch e.Kind {
	case KindNavigatedAway:
		next := s.Clone()
		next.Selected = nil
		next.Status = Idle
		next.Message = ""
		return next
	case KindMessageDismissed:
		next := s.Clone()
		if next.Status == Succeeded {
			next.Message = ""
		}
		return next
	case KindOperation:
		return reduceOperation(s, e)
	default:
		return s
	}
}

func reduceOperation(s State, e Event) State {
	switch e.Phase {
	case PhasePending:
		next := s.Clone()
		next.Status = Pending
		next.Message = ""
		return next
	case PhaseRejected:
		next := s.Clone()
		next.Status = Failed
		next.Message = e.Reason
		return next
	case PhaseFulfilled:
		return reduceFulfilled(s, e)
	default:
		return s
	}
}

func reduceFulfilled(s State, e Event) State {
	next := s.Clone()
	next.Status = Succeeded

	switch e.Op {
	case OpFetchAll:
		next.Items = dedupe(e.Posts)
		if next.Selected != nil {
			if fresh, ok := next.Find(next.Selected.ID); ok {
				next.Selected = ptr(fresh)
			}
		}

	case OpFetchOne:
		next.Selected = ptr(e.Post)
		next.Items = replace(next.Items, e.Post.ID, e.Post)

	case OpCreate:
		items := make([]models.Post, 0, len(next.Items)+1)
		items = append(items, e.Post.Clone())
		next.Items = append(items, remove(next.Items, e.Post.ID)...)
		if next.Selected != nil && next.Selected.ID == e.Post.ID {
			next.Selected = ptr(e.Post)
		}
		next.Message = MessageCreated

	case OpUpdate:
		target := e.Post.ID
		if target == 0 {
			target = e.ID
		}
		next.Items = replace(next.Items, target, e.Post)
		next.Selected = ptr(e.Post)
		next.Message = MessageUpdated

	case OpDelete:
		next.Items = remove(next.Items, e.ID)
		if next.Selected != nil && next.Selected.ID == e.ID {
			next.Selected = nil
		}
		next.Message = MessageDeleted
	}

	return next
}

func ptr(p models.Post) *models.Post {
	clone := p.Clone()
	return &clone
}

func indexOf(items []models.Post, id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// replace swaps the entry with the given id for p, keeping its position.
// items is returned unchanged when no entry matches.
func replace(items []models.Post, id int64, p models.Post) []models.Post {
	i := indexOf(items, id)
	if i < 0 {
		return items
	}
	items[i] = p.Clone()
	return items
}

func remove(items []models.Post, id int64) []models.Post {
	out := make([]models.Post, 0, len(items))
	for _, p := range items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// dedupe copies posts keeping the first entry of every id.
func dedupe(posts []models.Post) []models.Post {
	seen := make(map[int64]struct{}, len(posts))
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p.Clone())
	}
	return out
}

func clonePosts(items []models.Post) []models.Post {
	if items == nil {
		return nil
	}
	out := make([]models.Post, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
