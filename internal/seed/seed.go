// Package seed fills a development database with users, recipes, reviews,
// votes and favourites.
package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/repository"
	"github.com/teepha/More-Recipes/internal/service"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

//go:embed fixtures/*.yml
var fixtureFS embed.FS

var usernameStrip = regexp.MustCompile(`[^A-Za-z0-9_]`)

// RecipeFixture is one recipe from fixtures/recipes.yml.
type RecipeFixture struct {
	Title       string `yaml:"title"`
	Ingredients string `yaml:"ingredients"`
	Procedures  string `yaml:"procedures"`
}

type fixtureFile struct {
	Recipes []RecipeFixture `yaml:"recipes"`
}

// Options controls how much data Run creates.
type Options struct {
	NumUsers         int
	ReviewsPerRecipe int
	Clean            bool
	// RandSeed makes the generated data reproducible when non-zero.
	RandSeed int64
}

// Summary counts the rows Run created.
type Summary struct {
	Users     int
	Recipes   int
	Reviews   int
	Votes     int
	Favorites int
}

// Seeder writes seed data through the same services the API uses, so vote
// counters and review author details stay consistent.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// LoadFixtures parses the embedded recipe fixtures.
func LoadFixtures() ([]RecipeFixture, error) {
	raw, err := fixtureFS.ReadFile("fixtures/recipes.yml")
	if err != nil {
		return nil, err
	}
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse recipe fixtures: %w", err)
	}
	if len(file.Recipes) == 0 {
		return nil, errors.New("recipe fixtures are empty")
	}
	return file.Recipes, nil
}

// ClearAll deletes every row the API owns, children first.
func (s *Seeder) ClearAll(ctx context.Context) error {
	db := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{&models.Favorite{}, &models.Vote{}, &models.Review{}, &models.Recipe{}, &models.User{}} {
		if err := db.Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds opts.NumUsers users, one recipe per fixture, and random reviews,
// votes and favourites.
func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	var summary Summary
	if opts.NumUsers <= 0 {
		return summary, errors.New("seed requires at least one user")
	}
	// Zero picks a random seed.
	gofakeit.Seed(opts.RandSeed)
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(gofakeit.Int64()))

	fixtures, err := LoadFixtures()
	if err != nil {
		return summary, err
	}
	if opts.Clean {
		if err := s.ClearAll(ctx); err != nil {
			return summary, err
		}
	}

	repos := repository.NewRepos(s.db)
	tx := repository.Transactor(s.db)
	recipes := service.NewRecipeService(repos, tx)
	reviews := service.NewReviewService(tx)
	votes := service.NewVoteService(tx)
	favorites := service.NewFavoriteService(repos, tx)

	users, err := s.createUsers(ctx, repos, opts.NumUsers)
	if err != nil {
		return summary, err
	}
	summary.Users = len(users)

	var created []models.Recipe
	for i, f := range fixtures {
		owner := users[i%len(users)]
		all, err := recipes.Create(ctx, service.CreateRecipeInput{
			UserID:      owner.ID,
			Title:       f.Title,
			Ingredients: f.Ingredients,
			Procedures:  f.Procedures,
		})
		if err != nil {
			return summary, fmt.Errorf("create recipe %q: %w", f.Title, err)
		}
		created = append(created, all[len(all)-1])
	}
	summary.Recipes = len(created)

	for _, recipe := range created {
		for i := 0; i < opts.ReviewsPerRecipe; i++ {
			author := users[r.Intn(len(users))]
			if _, err := reviews.Add(ctx, service.AddReviewInput{
				UserID:        author.ID,
				RecipeID:      recipe.ID,
				ReviewSubject: gofakeit.Sentence(8),
			}); err != nil {
				return summary, fmt.Errorf("review recipe %d: %w", recipe.ID, err)
			}
			summary.Reviews++
		}

		for _, voter := range users {
			switch r.Intn(3) {
			case 0:
				continue
			case 1:
				_, _, err = votes.Vote(ctx, voter.ID, recipe.ID, models.VoteUp)
			default:
				_, _, err = votes.Vote(ctx, voter.ID, recipe.ID, models.VoteDown)
			}
			if err != nil {
				return summary, fmt.Errorf("vote on recipe %d: %w", recipe.ID, err)
			}
			summary.Votes++

			if r.Intn(2) == 0 {
				if _, err := favorites.Toggle(ctx, voter.ID, recipe.ID); err != nil {
					return summary, fmt.Errorf("favourite recipe %d: %w", recipe.ID, err)
				}
				summary.Favorites++
			}
		}
	}

	return summary, nil
}

func (s *Seeder) createUsers(ctx context.Context, repos repository.Repos, n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), service.PasswordCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		first, last := gofakeit.FirstName(), gofakeit.LastName()
		username := seedUsername(first+last, i)
		user := models.User{
			FullName:     first + " " + last,
			Username:     username,
			Email:        strings.ToLower(username) + "@example.com",
			Password:     string(hash),
			ProfileImage: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
			Location:     gofakeit.City(),
			AboutMe:      gofakeit.Sentence(12),
		}
		if err := repos.Users.Create(ctx, &user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", username, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// seedUsername derives a valid, unique username from name and the user's index.
func seedUsername(name string, i int) string {
	base := strings.ToLower(usernameStrip.ReplaceAllString(name, ""))
	if len(base) > 24 {
		base = base[:24]
	}
	if base == "" {
		base = "cook"
	}
	return fmt.Sprintf("%s_%d", base, i)
}
