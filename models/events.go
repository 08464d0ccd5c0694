// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteEventKind classifies a note lifecycle transition.
type NoteEventKind string

const (
	NoteCreated     NoteEventKind = "created"
	NoteSoftDeleted NoteEventKind = "soft_deleted"
	NoteRestored    NoteEventKind = "restored"
	NoteHardDeleted NoteEventKind = "hard_deleted"
)

// NoteEvent is published to subscribers after every successful mutation.
// Subscribers use it to refresh live list views without polling.
type NoteEvent struct {
	// Kind is the transition that occurred.
	Kind NoteEventKind `json:"kind"`

	// Note is the affected note. Creation events carry the full note;
	// lifecycle transitions populate ID and Deleted only, which is enough
	// for subscribers to decide which list views to reload.
	Note Note `json:"note"`
}
