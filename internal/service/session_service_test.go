package service

import (
	"context"
	"errors"
	"testing"

	"showcase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, raw string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func drainEvents(s *SessionService) {
	for {
		select {
		case <-s.Events():
		default:
			return
		}
	}
}

func TestSignIn_Success(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.Profile, error) {
		return &models.Profile{
			ID:       7,
			Name:     "Ada",
			Email:    email,
			Password: hashPassword(t, "CorrectHorse1!"),
		}, nil
	}

	svc := NewSessionService(repo)
	drainEvents(svc)

	profile, err := svc.SignIn(context.Background(), "ada@example.com", "CorrectHorse1!")
	require.NoError(t, err)
	assert.Equal(t, uint(7), profile.ID)
	assert.Equal(t, profile, svc.Current())

	ev := <-svc.Events()
	assert.Equal(t, SessionSignedIn, ev.Type)
	require.NotNil(t, ev.Profile)
	assert.Equal(t, uint(7), ev.Profile.ID)
}

func TestSignIn_UnknownEmailAndBadPasswordLookTheSame(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.Profile, error) {
		if email == "known@example.com" {
			return &models.Profile{
				ID:       1,
				Name:     "Known",
				Email:    email,
				Password: hashPassword(t, "RealPassword1!"),
			}, nil
		}
		return nil, nil
	}
	svc := NewSessionService(repo)

	_, errUnknown := svc.SignIn(context.Background(), "nobody@example.com", "whatever")
	_, errBadPass := svc.SignIn(context.Background(), "known@example.com", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errBadPass)
	assert.Equal(t, errUnknown.Error(), errBadPass.Error())
	assert.Nil(t, svc.Current())
}

func TestSignIn_ProvisionsMissingDisplayName(t *testing.T) {
	var saved *models.Profile
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.Profile, error) {
		return &models.Profile{
			ID:       3,
			Name:     "",
			Email:    "jane.doe@example.com",
			Password: hashPassword(t, "Passw0rd!longer"),
		}, nil
	}
	repo.updateFn = func(_ context.Context, p *models.Profile) error {
		saved = p
		return nil
	}

	svc := NewSessionService(repo)
	profile, err := svc.SignIn(context.Background(), "jane.doe@example.com", "Passw0rd!longer")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", profile.Name)
	require.NotNil(t, saved)
	assert.Equal(t, "jane.doe", saved.Name)
}

func TestSignIn_ProvisioningWriteFailureBlocksSignIn(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, _ string) (*models.Profile, error) {
		return &models.Profile{
			ID:       3,
			Name:     "",
			Email:    "jane@example.com",
			Password: hashPassword(t, "Passw0rd!longer"),
		}, nil
	}
	repo.updateFn = func(_ context.Context, _ *models.Profile) error {
		return errors.New("db down")
	}

	svc := NewSessionService(repo)
	_, err := svc.SignIn(context.Background(), "jane@example.com", "Passw0rd!longer")
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PARTIAL_PROVISIONING", appErr.Code)
	assert.Nil(t, svc.Current())
}

func TestSignUp_RejectsDuplicateEmail(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, _ string) (*models.Profile, error) {
		return &models.Profile{ID: 9, Email: "taken@example.com"}, nil
	}

	svc := NewSessionService(repo)
	err := svc.SignUp(context.Background(), "New User", "taken@example.com", "Passw0rd!longer")
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestSignUp_HashesPasswordAndDefaultsName(t *testing.T) {
	var created *models.Profile
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, p *models.Profile) error {
		created = p
		return nil
	}

	svc := NewSessionService(repo)
	err := svc.SignUp(context.Background(), "", "sam@example.com", "Passw0rd!longer")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "sam", created.Name)
	assert.NotEqual(t, "Passw0rd!longer", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Passw0rd!longer")))
}

func TestSignOut_ClearsSessionEvenWhenRevocationFails(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.Profile, error) {
		return &models.Profile{ID: 2, Name: "Sam", Email: email, Password: hashPassword(t, "Passw0rd!longer")}, nil
	}

	svc := NewSessionService(repo)
	svc.SetRevoker(func(_ context.Context) error { return errors.New("redis unreachable") })

	_, err := svc.SignIn(context.Background(), "sam@example.com", "Passw0rd!longer")
	require.NoError(t, err)
	drainEvents(svc)

	svc.SignOut(context.Background())
	assert.Nil(t, svc.Current())

	ev := <-svc.Events()
	assert.Equal(t, SessionSignedOut, ev.Type)
}

func TestRefreshCurrent_KeepsSnapshotOnFetchFailure(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.Profile, error) {
		return &models.Profile{ID: 4, Name: "Kim", Email: email, Password: hashPassword(t, "Passw0rd!longer")}, nil
	}
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
		return nil, models.NewInternalError(errors.New("db down"))
	}

	svc := NewSessionService(repo)
	signedIn, err := svc.SignIn(context.Background(), "kim@example.com", "Passw0rd!longer")
	require.NoError(t, err)

	svc.RefreshCurrent(context.Background())
	assert.Equal(t, signedIn, svc.Current())
}

func TestUpdateProfile(t *testing.T) {
	t.Run("requires a viewer", func(t *testing.T) {
		svc := NewSessionService(noopUserRepo())
		_, err := svc.UpdateProfile(context.Background(), nil, "Name", "", "")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHENTICATED", appErr.Code)
	})

	t.Run("returns the refetched profile", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Profile, error) {
			return &models.Profile{ID: id, Name: "Renamed", Bio: "new bio"}, nil
		}

		svc := NewSessionService(repo)
		viewer := &models.Profile{ID: 5, Name: "Old"}
		updated, err := svc.UpdateProfile(context.Background(), viewer, "Renamed", "new bio", "")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "new bio", updated.Bio)
	})
}

func TestDefaultDisplayName(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane.doe@example.com", "jane.doe"},
		{"  spaced@example.com", "spaced"},
		{"@example.com", "member"},
		{"", "member"},
		{"noatsign", "noatsign"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultDisplayName(tt.email), "email %q", tt.email)
	}
}
