package models

import "time"

const (
	ConsultationOpen     = "open"
	ConsultationAnswered = "answered"
	ConsultationClosed   = "closed"
)

// ValidConsultationStatus reports whether s is one of the known statuses.
func ValidConsultationStatus(s string) bool {
	switch s {
	case ConsultationOpen, ConsultationAnswered, ConsultationClosed:
		return true
	}
	return false
}

type Consultation struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Goals        *string   `json:"goals"`
	CurrentLevel *string   `json:"current_level"`
	Tags         []string  `json:"tags"`
	Status       string    `json:"status"`
	IsPaid       bool      `json:"is_paid"`
	Amount       int       `json:"amount"`
	BestAnswerID *string   `json:"best_answer_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
