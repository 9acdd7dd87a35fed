package models

import "time"

// Exercise is a single entry in a training program day. Only the name is
// mandatory; sets/reps/duration/notes stay nil when the trainer left them out.
type Exercise struct {
	Name     string  `json:"name"`
	Sets     *string `json:"sets,omitempty"`
	Reps     *string `json:"reps,omitempty"`
	Duration *string `json:"duration,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type ProgramDay struct {
	Day       string     `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

type Proposal struct {
	ID             string       `json:"id"`
	ConsultationID string       `json:"consultation_id"`
	TrainerID      string       `json:"trainer_id"`
	Title          string       `json:"title"`
	Content        string       `json:"content"`
	Program        []ProgramDay `json:"program"`
	Duration       *string      `json:"duration"`
	Frequency      *string      `json:"frequency"`
	IsBestAnswer   bool         `json:"is_best_answer"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ProposalWithTrainer is the consultation-detail view of a proposal,
// joined with the submitting trainer's display name and photo.
type ProposalWithTrainer struct {
	Proposal
	TrainerName     *string `json:"trainer_name"`
	TrainerPhotoURL *string `json:"trainer_photo_url"`
}
