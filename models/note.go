// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a single user note.
//
// A note is always in exactly one of two partitions: active
// (Deleted == false) or trashed (Deleted == true). Hard deletion removes
// the row entirely; no tombstone is kept.
type Note struct {
	// ID is the note identifier (UUID). Assigned once at creation,
	// immutable afterwards.
	ID string `json:"id"`

	// Title is the user-supplied note title.
	Title string `json:"title"`

	// Content is the user-supplied note body.
	Content string `json:"content"`

	// CreatedAt is assigned at creation and never changes. It is the
	// sole sort key of every list view (newest first).
	CreatedAt time.Time `json:"created_at"`

	// Deleted reports whether the note currently sits in the trash.
	// It is the only field the lifecycle operations toggle.
	Deleted bool `json:"deleted"`
}
