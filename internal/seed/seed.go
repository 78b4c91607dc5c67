// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"showcase/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumProjects int
	ShouldClean bool
}

var tagPool = []string{
	"golang", "react", "typescript", "postgres", "redis", "docker",
	"kubernetes", "design", "career", "opensource", "webdev", "devops",
	"testing", "performance", "security", "databases", "ai", "tooling",
}

var techPool = []string{
	"Go", "React", "TypeScript", "PostgreSQL", "Redis", "Docker",
	"Kubernetes", "Fiber", "GORM", "Vite", "Tailwind", "GitHub Actions",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	log.Printf("🌱 Starting database seeding with %d users, %d posts, %d projects...",
		opts.NumUsers, opts.NumPosts, opts.NumProjects)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createProfiles(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create profiles: %w", err)
	}
	log.Printf("✓ %d test profiles created", len(users))

	if err := createFollows(db, users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Println("✓ follow graph created")

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createEngagement(db, users, posts); err != nil {
		return fmt.Errorf("failed to create likes and comments: %w", err)
	}
	log.Println("✓ likes and comments created")

	if _, err := createProjects(db, users, opts.NumProjects); err != nil {
		return fmt.Errorf("failed to create projects: %w", err)
	}
	log.Printf("✓ %d projects created", opts.NumProjects)

	return nil
}

func clearData(db *gorm.DB) error {
	// Dependents before parents; the schema has no ON DELETE CASCADE.
	tables := []string{
		"post_likes", "comments", "post_tags", "project_technologies",
		"posts", "projects", "follows", "tags", "profiles",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createProfiles(db *gorm.DB, count int) ([]models.Profile, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.Profile, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, models.Profile{
			Name:         gofakeit.Name(),
			Email:        fmt.Sprintf("user%d@%s", i+1, gofakeit.DomainName()),
			Password:     string(hashed),
			Bio:          gofakeit.Sentence(12),
			ProfileImage: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createFollows(db *gorm.DB, users []models.Profile) error {
	if len(users) < 2 {
		return nil
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, u := range users {
		// Each user follows a handful of distinct others.
		targets := map[uint]bool{}
		for n := r.Intn(6); n > 0; n-- {
			t := users[r.Intn(len(users))]
			if t.ID == u.ID || targets[t.ID] {
				continue
			}
			targets[t.ID] = true
			follow := models.Follow{FollowerID: u.ID, FollowingID: t.ID}
			if err := db.Create(&follow).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createPosts(db *gorm.DB, users []models.Profile, count int) ([]models.Post, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		content := gofakeit.Paragraph(2, 4, 8, "\n\n")
		post := models.Post{
			Title:     gofakeit.Sentence(6),
			Content:   content,
			Excerpt:   gofakeit.Sentence(14),
			AuthorID:  author.ID,
			CreatedAt: time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour),
		}
		if r.Intn(3) > 0 {
			post.CoverImage = fmt.Sprintf("https://picsum.photos/seed/%s/800/450", gofakeit.UUID())
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}

		for _, name := range pickDistinct(r, tagPool, r.Intn(4)) {
			var tag models.Tag
			if err := db.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
				return nil, err
			}
			if err := db.Model(&post).Association("TagRows").Append(&tag); err != nil {
				return nil, err
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createEngagement(db *gorm.DB, users []models.Profile, posts []models.Post) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, post := range posts {
		for _, u := range pickUsers(r, users, r.Intn(len(users)/2+1)) {
			like := models.PostLike{PostID: post.ID, UserID: u.ID}
			if err := db.Create(&like).Error; err != nil {
				return err
			}
		}
		for n := r.Intn(4); n > 0; n-- {
			author := users[r.Intn(len(users))]
			comment := models.Comment{
				PostID:   post.ID,
				AuthorID: author.ID,
				Content:  gofakeit.Sentence(10),
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createProjects(db *gorm.DB, users []models.Profile, count int) ([]models.Project, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	projects := make([]models.Project, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		project := models.Project{
			Title:       gofakeit.AppName(),
			Description: gofakeit.Paragraph(1, 3, 10, " "),
			Image:       fmt.Sprintf("https://picsum.photos/seed/proj-%s/640/360", gofakeit.UUID()),
			Link:        gofakeit.URL(),
			AuthorID:    author.ID,
		}
		if err := db.Create(&project).Error; err != nil {
			return nil, err
		}
		for _, tech := range pickDistinct(r, techPool, 2+r.Intn(3)) {
			link := models.ProjectTechnology{ProjectID: project.ID, Technology: tech}
			if err := db.Create(&link).Error; err != nil {
				return nil, err
			}
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func pickDistinct(r *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	perm := r.Perm(len(pool))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}

func pickUsers(r *rand.Rand, users []models.Profile, n int) []models.Profile {
	if n > len(users) {
		n = len(users)
	}
	perm := r.Perm(len(users))
	out := make([]models.Profile, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, users[idx])
	}
	return out
}
