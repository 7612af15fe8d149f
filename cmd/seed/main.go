// Command seed provisions the demo accounts and sample data. Users are only
// ever created here; the API itself has no user write endpoints.
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/taskboard/internal/core/domain"
	"github.com/taskvault/taskboard/internal/infrastructure/db/postgres"
	"github.com/taskvault/taskboard/internal/pkg/config"
	"github.com/taskvault/taskboard/pkg/logger"
)

const seedPassword = "Password123!"

var seedUsers = []domain.User{
	{Email: "admin@tv.com", Name: "Admin", Role: domain.RoleAdmin},
	{Email: "manager@tv.com", Name: "Manager", Role: domain.RoleManager},
	{Email: "worker@tv.com", Name: "Worker", Role: domain.RoleWorker},
}

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if err := postgres.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash seed password")
	}

	// Users, keyed on email so reruns are harmless.
	ids := make(map[string]string, len(seedUsers))
	for _, u := range seedUsers {
		var id string
		err := pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, u.Email).Scan(&id)
		if err != nil {
			id = domain.NewID()
			_, err = pool.Exec(ctx,
				`INSERT INTO users (id, email, password_hash, name, role) VALUES ($1, $2, $3, $4, $5)`,
				id, u.Email, string(hash), u.Name, u.Role)
			if err != nil {
				log.Fatal().Err(err).Str("email", u.Email).Msg("failed to insert user")
			}
		}
		ids[u.Email] = id
	}

	// Demo project with two tasks, created once.
	var projectID string
	err = pool.QueryRow(ctx, `SELECT id FROM projects WHERE name = $1`, "Onboarding").Scan(&projectID)
	if err != nil {
		projectID = domain.NewID()
		if _, err := pool.Exec(ctx, `INSERT INTO projects (id, name) VALUES ($1, $2)`, projectID, "Onboarding"); err != nil {
			log.Fatal().Err(err).Msg("failed to insert project")
		}

		due := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		workerID := ids["worker@tv.com"]

		tasks := []struct {
			title      string
			status     domain.Status
			assigneeID *string
			dueDate    *string
		}{
			{"Create org policies", domain.StatusTodo, nil, nil},
			{"Set up clinic calendar", domain.StatusInProgress, &workerID, &due},
		}
		for _, t := range tasks {
			_, err := pool.Exec(ctx,
				`INSERT INTO tasks (id, project_id, title, status, assignee_id, due_date) VALUES ($1, $2, $3, $4, $5, $6)`,
				domain.NewID(), projectID, t.title, t.status, t.assigneeID, t.dueDate)
			if err != nil {
				log.Fatal().Err(err).Str("title", t.title).Msg("failed to insert task")
			}
		}
	}

	log.Info().Msg("seed complete: admin@tv.com, manager@tv.com, worker@tv.com (Password123!)")
}
