package models

import "time"

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type TrainerProfile struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	ProfilePhoto   *string           `json:"profile_photo"`
	Bio            *string           `json:"bio"`
	Specialties    []string          `json:"specialties"`
	Certifications []Certification   `json:"certifications"`
	SocialLinks    map[string]string `json:"social_links"`
	IsVerified     bool              `json:"is_verified"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
