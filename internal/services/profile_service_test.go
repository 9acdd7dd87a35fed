package services

import (
	"context"
	"testing"

	"github.com/Tai550/training-menu-platform/internal/models"
	"github.com/Tai550/training-menu-platform/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type stubTrainerProfileStore struct {
	getResult    *models.TrainerProfile
	getErr       error
	createResult *models.TrainerProfile
	createErr    error
	updateResult *models.TrainerProfile
	updateErr    error
	createdID    string
	lastInput    repository.TrainerProfileInput
	created      bool
	updated      bool
}

func (r *stubTrainerProfileStore) Create(_ context.Context, id string, _ string, input repository.TrainerProfileInput) (*models.TrainerProfile, error) {
	r.created = true
	r.createdID = id
	r.lastInput = input
	return r.createResult, r.createErr
}

func (r *stubTrainerProfileStore) GetByUserID(_ context.Context, _ string) (*models.TrainerProfile, error) {
	return r.getResult, r.getErr
}

func (r *stubTrainerProfileStore) Update(_ context.Context, _ string, input repository.TrainerProfileInput) (*models.TrainerProfile, error) {
	r.updated = true
	r.lastInput = input
	return r.updateResult, r.updateErr
}

type stubUserProfileStore struct {
	getResult    *models.UserProfile
	getErr       error
	createResult *models.UserProfile
	updateResult *models.UserProfile
	created      bool
	updated      bool
}

func (r *stubUserProfileStore) Create(_ context.Context, _ string, _ string, _ repository.UserProfileInput) (*models.UserProfile, error) {
	r.created = true
	return r.createResult, nil
}

func (r *stubUserProfileStore) GetByUserID(_ context.Context, _ string) (*models.UserProfile, error) {
	return r.getResult, r.getErr
}

func (r *stubUserProfileStore) Update(_ context.Context, _ string, _ repository.UserProfileInput) (*models.UserProfile, error) {
	r.updated = true
	return r.updateResult, nil
}

type stubUserTypeUpdater struct {
	user     *models.User
	err      error
	lastType string
}

func (r *stubUserTypeUpdater) UpdateUserType(_ context.Context, _ string, userType string) (*models.User, error) {
	r.lastType = userType
	if r.err != nil {
		return nil, r.err
	}
	return r.user, nil
}

func TestUpsertTrainerProfileCreatesLazily(t *testing.T) {
	store := &stubTrainerProfileStore{
		getErr:       pgx.ErrNoRows,
		createResult: &models.TrainerProfile{ID: "tp1", IsVerified: false},
	}
	service := &ProfileService{trainerProfileRepo: store}

	bio := "Ten years of strength coaching"
	profile, err := service.UpsertTrainerProfile(context.Background(), "t1", repository.TrainerProfileInput{
		Bio:         &bio,
		Specialties: []string{"strength", "mobility"},
	})
	require.NoError(t, err)
	require.True(t, store.created)
	require.False(t, store.updated)
	require.False(t, profile.IsVerified)
	require.NotEmpty(t, store.createdID)
	require.Equal(t, []string{"strength", "mobility"}, store.lastInput.Specialties)
}

func TestUpsertTrainerProfileUpdatesInPlace(t *testing.T) {
	store := &stubTrainerProfileStore{
		getResult:    &models.TrainerProfile{ID: "tp1", UserID: "t1"},
		updateResult: &models.TrainerProfile{ID: "tp1", UserID: "t1"},
	}
	service := &ProfileService{trainerProfileRepo: store}

	links := map[string]string{"instagram": "https://instagram.com/coach"}
	_, err := service.UpsertTrainerProfile(context.Background(), "t1", repository.TrainerProfileInput{
		SocialLinks: links,
	})
	require.NoError(t, err)
	require.False(t, store.created)
	require.True(t, store.updated)
	require.Equal(t, links, store.lastInput.SocialLinks)
	// Fields the caller left out must not be supplied to the store.
	require.Nil(t, store.lastInput.Bio)
	require.Nil(t, store.lastInput.Specialties)
}

func TestUpsertUserProfileCreatesThenUpdates(t *testing.T) {
	store := &stubUserProfileStore{
		getErr:       pgx.ErrNoRows,
		createResult: &models.UserProfile{ID: "up1"},
	}
	service := &ProfileService{userProfileRepo: store}

	_, err := service.UpsertUserProfile(context.Background(), "u1", repository.UserProfileInput{})
	require.NoError(t, err)
	require.True(t, store.created)

	store2 := &stubUserProfileStore{
		getResult:    &models.UserProfile{ID: "up1"},
		updateResult: &models.UserProfile{ID: "up1"},
	}
	service2 := &ProfileService{userProfileRepo: store2}

	_, err = service2.UpsertUserProfile(context.Background(), "u1", repository.UserProfileInput{})
	require.NoError(t, err)
	require.True(t, store2.updated)
	require.False(t, store2.created)
}

func TestUpdateUserTypeValidatesValue(t *testing.T) {
	updater := &stubUserTypeUpdater{user: &models.User{ID: "u1", UserType: models.UserTypeTrainer}}
	service := &ProfileService{userRepo: updater}

	_, err := service.UpdateUserType(context.Background(), "u1", "superuser")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Empty(t, updater.lastType)

	user, err := service.UpdateUserType(context.Background(), "u1", models.UserTypeTrainer)
	require.NoError(t, err)
	require.Equal(t, models.UserTypeTrainer, user.UserType)
	require.Equal(t, models.UserTypeTrainer, updater.lastType)
}
