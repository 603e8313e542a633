// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client's synchronized view of the remote posts
// collection.
//
// [Reduce] is a pure transition function from one [State] to the next.
// [Store] owns the current State, applies events one at a time under a mutex
// and notifies subscribers with a deep copy of the result. Operation outcomes
// reach the store as [Event] values produced by the operation coordinator.
package state
