package service

import "showcase/internal/models"

// Viewer-relative projections over the content snapshot. These are pure
// synchronous functions: they take the viewer and the snapshot explicitly and
// recompute on every call, so they are always consistent with the last
// successful fetch.

// FeedFor returns the subsequence of posts authored by the viewer or by
// someone the viewer follows, preserving the newest-first order of the
// source collection. A nil viewer gets an empty feed.
func FeedFor(viewer *models.Profile, posts []models.Post) []models.Post {
	feed := make([]models.Post, 0)
	if viewer == nil {
		return feed
	}
	for _, post := range posts {
		if post.AuthorID == viewer.ID || viewer.IsFollowing(post.AuthorID) {
			feed = append(feed, post)
		}
	}
	return feed
}

// PostsByAuthor filters the snapshot to posts by the given author.
func PostsByAuthor(authorID uint, posts []models.Post) []models.Post {
	out := make([]models.Post, 0)
	for _, post := range posts {
		if post.AuthorID == authorID {
			out = append(out, post)
		}
	}
	return out
}

// ProjectsByAuthor filters the snapshot to projects by the given author.
func ProjectsByAuthor(authorID uint, projects []models.Project) []models.Project {
	out := make([]models.Project, 0)
	for _, project := range projects {
		if project.AuthorID == authorID {
			out = append(out, project)
		}
	}
	return out
}

// HasLiked reports whether the viewer is in the post's liker set. False for
// a nil viewer or an unknown post.
func HasLiked(viewer *models.Profile, postID uint, posts []models.Post) bool {
	if viewer == nil {
		return false
	}
	for _, post := range posts {
		if post.ID == postID {
			return post.LikedByUser(viewer.ID)
		}
	}
	return false
}
