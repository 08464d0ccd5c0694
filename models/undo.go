// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InverseAction names the operation that reverses the most recent
// soft-delete or restore.
type InverseAction string

const (
	// InverseRestore undoes a soft-delete by clearing the deleted flag.
	InverseRestore InverseAction = "restore"

	// InverseSoftDelete undoes a restore by setting the deleted flag again.
	InverseSoftDelete InverseAction = "soft_delete"
)

// UndoSlot is the single-capacity memory of the last reversible mutation.
//
// At most one slot is live at any time. A new soft-delete or restore
// replaces the slot wholesale; executing the inverse action, reaching
// ExpiresAt, or hard-deleting the referenced note all invalidate it.
type UndoSlot struct {
	// NoteID identifies the note the last mutation touched.
	NoteID string

	// Inverse is the action that reverses the last mutation.
	Inverse InverseAction

	// ExpiresAt is the deadline after which the slot no longer applies.
	// Expiry is evaluated lazily when undo is invoked.
	ExpiresAt time.Time
}
