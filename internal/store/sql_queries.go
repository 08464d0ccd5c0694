// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

const notesTable = "notes"

// noteColumns is the canonical column order used by every SELECT and the
// row-scanning code in repository_note.go. Keep the two in sync.
var noteColumns = []string{"id", "title", "content", "created_at", "deleted"}

func buildInsertNoteQuery(sb sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return sb.
		Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.Title, note.Content, note.CreatedAt, note.Deleted).
		ToSql()
}

func buildSelectNoteByIDQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return sb.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectNotesByFlagQuery(sb sq.StatementBuilderType, deleted bool) (string, []any, error) {
	return sb.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"deleted": deleted}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildSetDeletedQuery(sb sq.StatementBuilderType, id string, deleted bool) (string, []any, error) {
	return sb.
		Update(notesTable).
		Set("deleted", deleted).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteNoteQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return sb.
		Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
