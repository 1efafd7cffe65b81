// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores a plain-text marker password instead of hashing.
	// Dev-only shortcut; sign-in will not work for these accounts.
	SkipBcrypt bool
	// Seed makes generated content reproducible when non-zero.
	Seed int64
}

// Seed populates the database with a consistent social mesh: users, posts,
// follow edges, likes and replies. All edges are created through the
// repository layer so the denormalized counters always match edge counts.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = opts.NumUsers * 3
	}

	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = gofakeit.Int64()
	}
	gofakeit.Seed(seed)
	rng := rand.New(rand.NewSource(seed))

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	replyRepo := repository.NewReplyRepository(db)

	users, err := createUsers(ctx, userRepo, opts)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	posts, err := createPosts(ctx, postRepo, users, opts.NumPosts, rng)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("Created %d posts", len(posts))

	follows, err := createFollowMesh(ctx, followRepo, users, rng)
	if err != nil {
		return fmt.Errorf("failed to create follow mesh: %w", err)
	}
	log.Printf("Created %d follow edges", follows)

	likes, replies, err := createEngagement(ctx, likeRepo, replyRepo, users, posts, rng)
	if err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Printf("Created %d likes and %d replies", likes, replies)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	// Edge tables first, then content, then users.
	for _, model := range []any{
		&models.Like{}, &models.Follow{}, &models.Reply{}, &models.Post{}, &models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(ctx context.Context, userRepo repository.UserRepository, opts Options) ([]*models.User, error) {
	password := "password123"
	if !opts.SkipBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		password = string(hashed)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Username:    fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Password:    password,
			Description: gofakeit.Sentence(10),
			Profile:     fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			// Username collisions are possible with generated names; retry once.
			user.Username = fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(1000, 9999))
			if err := userRepo.Create(ctx, user); err != nil {
				return nil, err
			}
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(ctx context.Context, postRepo repository.PostRepository, users []*models.User, count int, rng *rand.Rand) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rng.Intn(len(users))]
		post := &models.Post{
			Body:   gofakeit.Paragraph(1, 3, 8, "\n"),
			UserID: author.ID,
		}
		if err := postRepo.Create(ctx, post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// createFollowMesh gives every user a handful of follows. Self-follows and
// duplicates are skipped, so the resulting counters mirror the edges exactly.
func createFollowMesh(ctx context.Context, followRepo repository.FollowRepository, users []*models.User, rng *rand.Rand) (int, error) {
	created := 0
	for _, follower := range users {
		n := 1 + rng.Intn(5)
		for i := 0; i < n; i++ {
			target := users[rng.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			err := followRepo.Follow(ctx, follower.ID, target.ID)
			if err != nil {
				if models.HasCode(err, models.CodeAlreadyExists) {
					continue
				}
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func createEngagement(
	ctx context.Context,
	likeRepo repository.LikeRepository,
	replyRepo repository.ReplyRepository,
	users []*models.User,
	posts []*models.Post,
	rng *rand.Rand,
) (likes, replies int, err error) {
	for _, post := range posts {
		for _, user := range users {
			if rng.Float64() < 0.2 {
				liked, err := likeRepo.Toggle(ctx, user.ID, post.ID)
				if err != nil {
					return likes, replies, err
				}
				if liked {
					likes++
				}
			}
			if rng.Float64() < 0.1 {
				reply := &models.Reply{
					Body:   gofakeit.Sentence(12),
					UserID: user.ID,
					PostID: post.ID,
				}
				if err := replyRepo.CreateWithCount(ctx, reply); err != nil {
					return likes, replies, err
				}
				replies++
			}
		}
	}
	return likes, replies, nil
}
