// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildInsertNoteQuery_SQLContainsParts(t *testing.T) {
	note := models.Note{
		ID:        "b7a3c1f2-0000-4000-8000-000000000001",
		Title:     "Groceries",
		Content:   "Milk, eggs",
		CreatedAt: time.Now(),
		Deleted:   false,
	}

	query, args, err := buildInsertNoteQuery(questionBuilder, note)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 5)
	require.Equal(t, note.ID, args[0])
	require.Equal(t, note.Title, args[1])
	require.Equal(t, note.Content, args[2])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into notes")
	require.Contains(t, q, "values")
	for _, c := range noteColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectNoteByIDQuery(t *testing.T) {
	query, args, err := buildSelectNoteByIDQuery(questionBuilder, "some-id")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "some-id", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from notes")
	require.Contains(t, q, "where")
	require.Contains(t, q, "id = ?")
}

func Test_buildSelectNotesByFlagQuery(t *testing.T) {
	tests := []struct {
		name    string
		deleted bool
	}{
		{name: "active partition", deleted: false},
		{name: "trash partition", deleted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectNotesByFlagQuery(questionBuilder, tt.deleted)
			require.NoError(t, err)

			require.Len(t, args, 1)
			require.Equal(t, tt.deleted, args[0])

			q := strings.ToLower(query)
			require.Contains(t, q, "from notes")
			require.Contains(t, q, "deleted = ?")

			// newest first is part of the read contract
			require.Contains(t, q, "order by created_at desc")

			// all columns are selected
			for _, c := range noteColumns {
				require.Contains(t, q, c)
			}
		})
	}
}

func Test_buildSetDeletedQuery(t *testing.T) {
	query, args, err := buildSetDeletedQuery(questionBuilder, "note-1", true)
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, true, args[0])
	require.Equal(t, "note-1", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "update notes")
	require.Contains(t, q, "set deleted = ?")
	require.Contains(t, q, "where id = ?")
}

func Test_buildDeleteNoteQuery(t *testing.T) {
	query, args, err := buildDeleteNoteQuery(questionBuilder, "note-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "note-1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from notes")
	require.Contains(t, q, "where id = ?")
}

// The dollar builder must produce Postgres placeholders from the exact same
// builder functions.
func Test_buildQueries_PostgresPlaceholders(t *testing.T) {
	query, _, err := buildSelectNoteByIDQuery(dollarBuilder, "some-id")
	require.NoError(t, err)
	assert.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")

	query, _, err = buildSetDeletedQuery(dollarBuilder, "note-1", false)
	require.NoError(t, err)
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "$2")
}
