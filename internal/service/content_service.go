package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"showcase/internal/middleware"
	"showcase/internal/models"
	"showcase/internal/repository"
)

// CreatePostInput carries the author-supplied fields for a new post.
type CreatePostInput struct {
	Title      string
	Content    string
	Excerpt    string
	CoverImage string
	Tags       []string
}

// CreateProjectInput carries the author-supplied fields for a new project.
type CreateProjectInput struct {
	Title        string
	Description  string
	Image        string
	Link         string
	Technologies []string
}

// ContentService fetches posts and projects with their joined author, like,
// comment and label data, and keeps the normalized result as an in-memory
// snapshot. Every mutation writes through to the store and then re-fetches
// the affected collection in full, so new rows pass through the same
// normalization path as everything else. A failed re-fetch keeps the previous
// snapshot: transient failures degrade to stale data, never blank data.
type ContentService struct {
	postRepo    repository.PostRepository
	projectRepo repository.ProjectRepository
	commentRepo repository.CommentRepository

	mu              sync.RWMutex
	posts           []models.Post
	projects        []models.Project
	loadingPosts    bool
	loadingProjects bool
}

// NewContentService returns a new ContentService with empty snapshots.
func NewContentService(
	postRepo repository.PostRepository,
	projectRepo repository.ProjectRepository,
	commentRepo repository.CommentRepository,
) *ContentService {
	return &ContentService{
		postRepo:    postRepo,
		projectRepo: projectRepo,
		commentRepo: commentRepo,
	}
}

// RefreshPosts replaces the post snapshot with a fresh wide read, newest
// created first. On failure the previous snapshot is left intact.
func (s *ContentService) RefreshPosts(ctx context.Context) error {
	s.mu.Lock()
	s.loadingPosts = true
	s.mu.Unlock()

	posts, err := s.postRepo.List(ctx)

	s.mu.Lock()
	s.loadingPosts = false
	if err == nil {
		s.posts = posts
	}
	s.mu.Unlock()

	if err != nil {
		middleware.SnapshotRefreshes.WithLabelValues("posts", "error").Inc()
		middleware.Logger.WarnContext(ctx, "post refresh failed; keeping previous snapshot",
			slog.String("error", err.Error()))
		return err
	}
	middleware.SnapshotRefreshes.WithLabelValues("posts", "ok").Inc()
	return nil
}

// RefreshProjects replaces the project snapshot with a fresh wide read.
// On failure the previous snapshot is left intact.
func (s *ContentService) RefreshProjects(ctx context.Context) error {
	s.mu.Lock()
	s.loadingProjects = true
	s.mu.Unlock()

	projects, err := s.projectRepo.List(ctx)

	s.mu.Lock()
	s.loadingProjects = false
	if err == nil {
		s.projects = projects
	}
	s.mu.Unlock()

	if err != nil {
		middleware.SnapshotRefreshes.WithLabelValues("projects", "error").Inc()
		middleware.Logger.WarnContext(ctx, "project refresh failed; keeping previous snapshot",
			slog.String("error", err.Error()))
		return err
	}
	middleware.SnapshotRefreshes.WithLabelValues("projects", "ok").Inc()
	return nil
}

// Posts returns a copy of the current post snapshot, newest created first.
func (s *ContentService) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Projects returns a copy of the current project snapshot.
func (s *ContentService) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// PostsLoading reports whether a post fetch is in flight.
func (s *ContentService) PostsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingPosts
}

// ProjectsLoading reports whether a project fetch is in flight.
func (s *ContentService) ProjectsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingProjects
}

// GetPost is a point lookup against the last-synchronized snapshot. Absence
// is a value, never an error.
func (s *ContentService) GetPost(id uint) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// GetProject is a point lookup against the last-synchronized snapshot.
func (s *ContentService) GetProject(id uint) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// CreatePost persists a post with its tag links and refreshes the post
// snapshot. The returned post is the normalized one from the fresh snapshot.
func (s *ContentService) CreatePost(ctx context.Context, viewer *models.Profile, in CreatePostInput) (*models.Post, error) {
	if viewer == nil {
		return nil, models.NewUnauthenticatedError("You must be logged in to create a post")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post := &models.Post{
		Title:      in.Title,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CoverImage: in.CoverImage,
		AuthorID:   viewer.ID,
	}
	if err := s.postRepo.Create(ctx, post, in.Tags); err != nil {
		return nil, err
	}

	// The write succeeded; a failed refresh degrades to returning the row as
	// written, and the snapshot catches up on the next refresh.
	if err := s.RefreshPosts(ctx); err == nil {
		if created, ok := s.GetPost(post.ID); ok {
			return &created, nil
		}
	}
	post.Author = *viewer
	post.Normalize()
	return post, nil
}

// CreateProject persists a project with its technology links and refreshes
// the project snapshot.
func (s *ContentService) CreateProject(ctx context.Context, viewer *models.Profile, in CreateProjectInput) (*models.Project, error) {
	if viewer == nil {
		return nil, models.NewUnauthenticatedError("You must be logged in to create a project")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, models.NewValidationError("Description is required")
	}

	project := &models.Project{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Link:        in.Link,
		AuthorID:    viewer.ID,
	}
	if err := s.projectRepo.Create(ctx, project, in.Technologies); err != nil {
		return nil, err
	}

	if err := s.RefreshProjects(ctx); err == nil {
		if created, ok := s.GetProject(project.ID); ok {
			return &created, nil
		}
	}
	project.Author = *viewer
	project.Normalize()
	return project, nil
}

// LikePost inserts the viewer into the post's liker set and refreshes the
// post snapshot.
func (s *ContentService) LikePost(ctx context.Context, viewer *models.Profile, postID uint) error {
	if viewer == nil {
		return models.NewUnauthenticatedError("You must be logged in to like a post")
	}
	if err := s.postRepo.Like(ctx, postID, viewer.ID); err != nil {
		return err
	}
	_ = s.RefreshPosts(ctx)
	return nil
}

// UnlikePost removes the viewer from the post's liker set and refreshes the
// post snapshot.
func (s *ContentService) UnlikePost(ctx context.Context, viewer *models.Profile, postID uint) error {
	if viewer == nil {
		return models.NewUnauthenticatedError("You must be logged in to unlike a post")
	}
	if err := s.postRepo.Unlike(ctx, postID, viewer.ID); err != nil {
		return err
	}
	_ = s.RefreshPosts(ctx)
	return nil
}

// CommentOnPost appends a comment and refreshes the post snapshot; comments
// are never appended to the snapshot optimistically.
func (s *ContentService) CommentOnPost(ctx context.Context, viewer *models.Profile, postID uint, content string) error {
	if viewer == nil {
		return models.NewUnauthenticatedError("You must be logged in to comment on a post")
	}
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Comment content is required")
	}

	comment := &models.Comment{
		Content:  content,
		PostID:   postID,
		AuthorID: viewer.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return err
	}
	_ = s.RefreshPosts(ctx)
	return nil
}
