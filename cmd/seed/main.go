// Command seed populates the development database with sample data.
package main

import (
	"flag"
	"log"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "number of users to create")
	numPosts := flag.Int("posts", 60, "number of posts to create")
	clean := flag.Bool("clean", false, "remove existing data first")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plain-text passwords (dev fast mode)")
	randSeed := flag.Int64("seed", 0, "random seed (0 means random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *clean,
		SkipBcrypt:  *skipBcrypt,
		Seed:        *randSeed,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
