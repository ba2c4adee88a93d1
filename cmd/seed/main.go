// Command seed fills the database with development data.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/teepha/More-Recipes/internal/config"
	"github.com/teepha/More-Recipes/internal/database"
	"github.com/teepha/More-Recipes/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	reviews := flag.Int("reviews", 3, "Reviews per recipe")
	clean := flag.Bool("clean", true, "Clean database before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed; 0 picks one")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	summary, err := seed.NewSeeder(db).Run(ctx, seed.Options{
		NumUsers:         *numUsers,
		ReviewsPerRecipe: *reviews,
		Clean:            *clean,
		RandSeed:         *randSeed,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d recipes, %d reviews, %d votes, %d favourites",
		summary.Users, summary.Recipes, summary.Reviews, summary.Votes, summary.Favorites)
	log.Printf("All seeded users have the password: %s", seed.DefaultPassword)
}
