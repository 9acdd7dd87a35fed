package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Tai550/training-menu-platform/internal/models"
)

// The store keeps tags, programs, specialties, certifications and social
// links as opaque JSON text columns. Typed structures exist only on the
// application side of this boundary; these codecs are the only place the
// raw text is touched.

func encodeTextJSON(v any) (*string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	s := string(b)
	return &s, nil
}

func decodeStringList(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, fmt.Errorf("decode string list column: %w", err)
	}
	return out, nil
}

func decodeProgram(raw *string) ([]models.ProgramDay, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out []models.ProgramDay
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, fmt.Errorf("decode program column: %w", err)
	}
	return out, nil
}

func decodeCertifications(raw *string) ([]models.Certification, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out []models.Certification
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, fmt.Errorf("decode certifications column: %w", err)
	}
	return out, nil
}

func decodeLinkMap(raw *string) (map[string]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, fmt.Errorf("decode social links column: %w", err)
	}
	return out, nil
}
