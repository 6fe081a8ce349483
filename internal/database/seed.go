package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yukikurage/task-assignment-api/internal/models"
	"github.com/yukikurage/task-assignment-api/internal/repository"
)

// DemoUsers are inserted into an empty users table so tasks can be assigned right away.
var DemoUsers = []models.User{
	{Name: "Alice Johnson", Email: "alice@example.com"},
	{Name: "Bob Smith", Email: "bob@example.com"},
	{Name: "Carol Williams", Email: "carol@example.com"},
}

// SeedUsers inserts DemoUsers when no user exists yet. It returns how many were created.
func SeedUsers(ctx context.Context, users repository.UserRepository, log zerolog.Logger) (int, error) {
	count, err := users.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Debug().Int64("users", count).Msg("users present, skipping seed")
		return 0, nil
	}

	for _, demo := range DemoUsers {
		user := demo
		if err := users.Create(ctx, &user); err != nil {
			return 0, fmt.Errorf("failed to seed user %s: %w", user.Email, err)
		}
		log.Info().Uint64("user_id", user.ID).Str("email", user.Email).Msg("seeded user")
	}

	return len(DemoUsers), nil
}
