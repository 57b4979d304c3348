// FILE: internal/dto/portal_dto.go
// DTOs for the public feedback portal (ideas and votes)
package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitIdeaRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	AuthorEmail string `json:"authorEmail,omitempty" validate:"omitempty,email"`
}

type UpdateIdeaStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=under-consideration planned not-now"`
}

type IdeaResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Votes       int       `json:"votes"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
