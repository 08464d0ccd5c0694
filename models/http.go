package models

// CreateNoteRequest is the JSON body of POST /api/notes.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
