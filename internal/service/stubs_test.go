package service

import (
	"context"

	"showcase/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.Profile, error)
	getByEmailFn func(context.Context, string) (*models.Profile, error)
	createFn     func(context.Context, *models.Profile) error
	updateFn     func(context.Context, *models.Profile) error
	listFn       func(context.Context, int, int) ([]models.Profile, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *userRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.Profile, error) { return &models.Profile{ID: id}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.Profile, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.Profile) error { return nil },
		updateFn:     func(_ context.Context, _ *models.Profile) error { return nil },
		listFn:       func(_ context.Context, _, _ int) ([]models.Profile, error) { return nil, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn func(context.Context, uint, uint) error
	deleteFn func(context.Context, uint, uint) error
	existsFn func(context.Context, uint, uint) (bool, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followingID uint) error {
	return s.createFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) error {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn: func(_ context.Context, _, _ uint) error { return nil },
		deleteFn: func(_ context.Context, _, _ uint) error { return nil },
		existsFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	listFn   func(context.Context) ([]models.Post, error)
	createFn func(context.Context, *models.Post, []string) error
	likeFn   func(context.Context, uint, uint) error
	unlikeFn func(context.Context, uint, uint) error
}

func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post, tags []string) error {
	return s.createFn(ctx, post, tags)
}
func (s *postRepoStub) Like(ctx context.Context, postID, userID uint) error {
	return s.likeFn(ctx, postID, userID)
}
func (s *postRepoStub) Unlike(ctx context.Context, postID, userID uint) error {
	return s.unlikeFn(ctx, postID, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		listFn:   func(_ context.Context) ([]models.Post, error) { return nil, nil },
		createFn: func(_ context.Context, _ *models.Post, _ []string) error { return nil },
		likeFn:   func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

// projectRepoStub is a stub for repository.ProjectRepository.
type projectRepoStub struct {
	listFn   func(context.Context) ([]models.Project, error)
	createFn func(context.Context, *models.Project, []string) error
}

func (s *projectRepoStub) List(ctx context.Context) ([]models.Project, error) {
	return s.listFn(ctx)
}
func (s *projectRepoStub) Create(ctx context.Context, project *models.Project, technologies []string) error {
	return s.createFn(ctx, project, technologies)
}

func noopProjectRepo() *projectRepoStub {
	return &projectRepoStub{
		listFn:   func(_ context.Context) ([]models.Project, error) { return nil, nil },
		createFn: func(_ context.Context, _ *models.Project, _ []string) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn func(context.Context, *models.Comment) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
	}
}
