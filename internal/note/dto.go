// AngelaMos | 2026
// dto.go

package note

import (
	"time"
)

type CreateNoteRequest struct {
	Title   string   `json:"title"   validate:"required,min=1,max=255"`
	Content string   `json:"content" validate:"max=50000"`
	Tags    []string `json:"tags"    validate:"omitempty,max=50,dive,min=1,max=64"`
}

type UpdateNoteRequest struct {
	Title   *string   `json:"title,omitempty"   validate:"omitempty,min=1,max=255"`
	Content *string   `json:"content,omitempty" validate:"omitempty,max=50000"`
	Tags    *[]string `json:"tags,omitempty"    validate:"omitempty,max=50,dive,min=1,max=64"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

func ToNoteResponse(n *Note) NoteResponse {
	tags := []string(n.Tags)
	if tags == nil {
		tags = []string{}
	}

	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		UserID:    n.UserID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func ToNoteResponseList(notes []Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, ToNoteResponse(&n))
	}
	return responses
}
