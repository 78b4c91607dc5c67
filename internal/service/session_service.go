// Package service implements the application's business logic over the
// repository layer.
package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"showcase/internal/middleware"
	"showcase/internal/models"
	"showcase/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// SessionEventType identifies an authentication state transition.
type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "signed_in"
	SessionSignedOut SessionEventType = "signed_out"
)

// SessionEvent is delivered once per authentication state change.
type SessionEvent struct {
	Type    SessionEventType
	Profile *models.Profile
}

// fallbackDisplayName is used when the email local part is empty.
const fallbackDisplayName = "member"

// SessionService owns authentication state and the mapping from an
// authenticated principal to its profile, including first-use provisioning.
type SessionService struct {
	userRepo repository.UserRepository

	// revoke performs remote session invalidation on sign-out. Best-effort:
	// a failure is logged and never blocks the local sign-out.
	revoke func(ctx context.Context) error

	mu      sync.RWMutex
	current *models.Profile
	events  chan SessionEvent
}

// NewSessionService returns a new SessionService. The initial "no session"
// state is emitted immediately; consumers must tolerate observing it before
// the first real sign-in.
func NewSessionService(userRepo repository.UserRepository) *SessionService {
	s := &SessionService{
		userRepo: userRepo,
		events:   make(chan SessionEvent, 16),
	}
	s.emit(SessionEvent{Type: SessionSignedOut})
	return s
}

// SetRevoker installs the remote invalidation hook used on sign-out.
func (s *SessionService) SetRevoker(revoke func(ctx context.Context) error) {
	s.revoke = revoke
}

// Events returns the session state change stream. One event is delivered per
// authentication state transition.
func (s *SessionService) Events() <-chan SessionEvent {
	return s.events
}

func (s *SessionService) emit(ev SessionEvent) {
	select {
	case s.events <- ev:
	default:
		// A slow consumer never blocks an auth transition.
	}
}

// Current returns the last-resolved viewer profile, or nil when signed out.
func (s *SessionService) Current() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SignIn authenticates the credentials, resolves (provisioning if needed) the
// profile and transitions the session to authenticated.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*models.Profile, error) {
	profile, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}

	// First-use provisioning: a principal can exist without a display name.
	// This write is part of session resolution, not a user-initiated profile
	// update, and a failure here blocks sign-in.
	if profile.Name == "" {
		profile.Name = DefaultDisplayName(profile.Email)
		if err := s.userRepo.Update(ctx, profile); err != nil {
			return nil, models.NewPartialProvisioningError(err)
		}
	}

	s.mu.Lock()
	s.current = profile
	s.mu.Unlock()

	s.emit(SessionEvent{Type: SessionSignedIn, Profile: profile})
	return profile, nil
}

// SignUp provisions the principal and its profile in a single logical
// operation.
func (s *SessionService) SignUp(ctx context.Context, name, email, password string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewValidationError("A profile with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	if name == "" {
		name = DefaultDisplayName(email)
	}

	profile := &models.Profile{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	return s.userRepo.Create(ctx, profile)
}

// SignOut clears session state unconditionally. Remote invalidation is
// best-effort; its failure is logged and never surfaces.
func (s *SessionService) SignOut(ctx context.Context) {
	if s.revoke != nil {
		if err := s.revoke(ctx); err != nil {
			middleware.Logger.WarnContext(ctx, "remote session invalidation failed",
				slog.String("error", err.Error()))
		}
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.emit(SessionEvent{Type: SessionSignedOut})
}

// ResolveViewer fetches the profile for an authenticated user ID, including
// its follower and following id sets.
func (s *SessionService) ResolveViewer(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// RefreshCurrent re-fetches the current viewer profile so the cached
// follower/following sets resynchronize after a mutation. A fetch failure
// leaves the previous snapshot intact.
func (s *SessionService) RefreshCurrent(ctx context.Context) {
	current := s.Current()
	if current == nil {
		return
	}

	fresh, err := s.userRepo.GetByID(ctx, current.ID)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "viewer refresh failed; keeping previous snapshot",
			slog.Any("user_id", current.ID),
			slog.String("error", err.Error()))
		return
	}

	s.mu.Lock()
	s.current = fresh
	s.mu.Unlock()
}

// UpdateProfile applies a user-initiated profile update and returns the
// resynchronized profile.
func (s *SessionService) UpdateProfile(ctx context.Context, viewer *models.Profile, name, bio, image string) (*models.Profile, error) {
	if viewer == nil {
		return nil, models.NewUnauthenticatedError("You must be logged in to update your profile")
	}
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	updated := *viewer
	updated.Name = name
	updated.Bio = bio
	updated.ProfileImage = image
	if err := s.userRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	fresh, err := s.userRepo.GetByID(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == fresh.ID {
		s.current = fresh
	}
	s.mu.Unlock()

	return fresh, nil
}

// DefaultDisplayName synthesizes a display name from the email's local part,
// falling back to a static default when the local part is empty.
func DefaultDisplayName(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	local = strings.TrimSpace(local)
	if local == "" {
		return fallbackDisplayName
	}
	return local
}
