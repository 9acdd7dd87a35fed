package repository

import (
	"testing"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProgramRoundTripPreservesOrderAndOptionalFields(t *testing.T) {
	program := []models.ProgramDay{
		{
			Day: "Day 1",
			Exercises: []models.Exercise{
				{Name: "Squat", Sets: strPtr("5"), Reps: strPtr("5")},
				{Name: "Plank", Duration: strPtr("60s"), Notes: strPtr("keep hips level")},
			},
		},
		{
			Day: "Day 2",
			Exercises: []models.Exercise{
				{Name: "Deadlift", Sets: strPtr("3"), Reps: strPtr("8")},
			},
		},
		{Day: "Day 3", Exercises: []models.Exercise{}},
	}

	encoded, err := encodeTextJSON(program)
	require.NoError(t, err)
	require.NotNil(t, encoded)

	decoded, err := decodeProgram(encoded)
	require.NoError(t, err)
	require.Equal(t, program, decoded)

	// Optional fields absent on submit must stay absent after a round trip.
	require.Nil(t, decoded[0].Exercises[0].Duration)
	require.Nil(t, decoded[0].Exercises[0].Notes)
	require.Nil(t, decoded[1].Exercises[0].Duration)
}

func TestDecodeProgramNilAndEmpty(t *testing.T) {
	decoded, err := decodeProgram(nil)
	require.NoError(t, err)
	require.Nil(t, decoded)

	empty := ""
	decoded, err = decodeProgram(&empty)
	require.NoError(t, err)
	require.Nil(t, decoded)

	bad := "{not json"
	_, err = decodeProgram(&bad)
	require.Error(t, err)
}

func TestStringListRoundTrip(t *testing.T) {
	tags := []string{"diet", "weight-loss", "beginner"}

	encoded, err := encodeTextJSON(tags)
	require.NoError(t, err)

	decoded, err := decodeStringList(encoded)
	require.NoError(t, err)
	require.Equal(t, tags, decoded)
}

func TestCertificationAndLinkCodecs(t *testing.T) {
	certifications := []models.Certification{
		{Name: "NSCA-CPT", Issuer: "NSCA", Year: "2019"},
		{Name: "JATI-ATI", Issuer: "JATI", Year: "2021"},
	}
	links := map[string]string{
		"instagram": "https://instagram.com/coach",
		"youtube":   "https://youtube.com/@coach",
	}

	encodedCerts, err := encodeTextJSON(certifications)
	require.NoError(t, err)
	decodedCerts, err := decodeCertifications(encodedCerts)
	require.NoError(t, err)
	require.Equal(t, certifications, decodedCerts)

	encodedLinks, err := encodeTextJSON(links)
	require.NoError(t, err)
	decodedLinks, err := decodeLinkMap(encodedLinks)
	require.NoError(t, err)
	require.Equal(t, links, decodedLinks)
}
