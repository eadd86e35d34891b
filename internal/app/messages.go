// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notes server handlers and the client.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of successful responses. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgHello answers the liveness route.
	MsgHello = "hello"

	// MsgRegistrationSuccessful is returned after a new account was created
	// and its first access token issued.
	MsgRegistrationSuccessful = "registration successful"

	// MsgLoginSuccessful is returned after valid credentials were exchanged
	// for an access token.
	MsgLoginSuccessful = "login successful"

	MsgUserRetrieved = "user retrieved successfully"

	MsgNoteAdded   = "note added successfully"
	MsgNoteUpdated = "note updated successfully"
	MsgNoteDeleted = "note deleted successfully"

	// MsgNotePinnedUpdated is returned by the toggle-pinned route whether the
	// note was pinned or unpinned.
	MsgNotePinnedUpdated = "note pinned status updated successfully"

	MsgAllNotesRetrieved = "all notes retrieved successfully"

	// MsgNotesFound is returned by a search, also when nothing matched.
	MsgNotesFound = "notes matching the search query retrieved successfully"
)
