// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"codelogs/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password assigned to every seeded account.
const DefaultPassword = "password123"

// Seeder populates the database with fake users and posts.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes seeded rows. Posts go first to respect the author
// foreign key.
func (s *Seeder) ClearAll() error {
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.Post{}).Error; err != nil {
		return fmt.Errorf("clearing posts: %w", err)
	}
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	return nil
}

// SeedUsers creates n users with unique usernames and emails. All accounts
// share DefaultPassword so seeded environments are easy to sign into.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hashing seed password: %w", err)
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		username := s.uniqueUsername(i)
		user := &models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
			Password: string(hashed),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("creating user %q: %w", username, err)
		}
		users = append(users, user)
	}

	log.Printf("seeded %d users", len(users))
	return users, nil
}

// SeedPosts creates n posts attributed to random seeded users, with
// creation times spread over the last 90 days.
func (s *Seeder) SeedPosts(users []*models.User, n int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attribute posts to")
	}

	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		post := &models.Post{
			Title:     strings.TrimSuffix(gofakeit.Sentence(s.rng.Intn(6)+3), "."),
			Content:   gofakeit.Paragraph(s.rng.Intn(3)+1, 3, 8, "\n\n"),
			AuthorID:  author.ID,
			CreatedAt: s.pastTimestamp(90),
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("creating post for user %d: %w", author.ID, err)
		}
		posts = append(posts, post)
	}

	log.Printf("seeded %d posts", len(posts))
	return posts, nil
}

// uniqueUsername derives a username that satisfies the signup rules: ascii
// letters, digits, underscore or hyphen, with a numeric suffix to avoid
// collisions across gofakeit draws.
func (s *Seeder) uniqueUsername(i int) string {
	base := strings.ToLower(gofakeit.Username())
	cleaned := make([]rune, 0, len(base))
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			cleaned = append(cleaned, r)
		}
	}
	name := strings.Trim(string(cleaned), "_-")
	if len(name) < 3 {
		name = "user"
	}
	if len(name) > 24 {
		name = name[:24]
	}
	return fmt.Sprintf("%s%d", name, i)
}

// pastTimestamp returns a time up to maxDays in the past.
func (s *Seeder) pastTimestamp(maxDays int) time.Time {
	daysBack := s.rng.Intn(maxDays)
	hoursBack := s.rng.Intn(24)
	minsBack := s.rng.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)
}
