// Command seeder inserts demo employees and time entries for local
// development. It is intended to be run against an empty dev database,
// not in production.
//
// Flags:
//
//	--admin-password  password for the seeded admin account (default "admin-password")
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/worktracker-backend/internal/adapter/postgres"
	employeerepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/employee"
	timeentryrepo "github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/timeentry"
	"github.com/heartmarshall/worktracker-backend/internal/app"
	"github.com/heartmarshall/worktracker-backend/internal/config"
	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

func main() {
	adminPassword := flag.String("admin-password", "admin-password", "password for the seeded admin account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		logger.Error("run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	employees := employeerepo.New(pool)
	entryRepo := timeentryrepo.New(pool)

	seeds := []struct {
		employee domain.Employee
		password string
	}{
		{
			employee: domain.Employee{
				EmployeeID: "EMP-001",
				FirstName:  "Alice",
				LastName:   "Admin",
				Email:      "admin@example.com",
				Department: "Management",
				Position:   "Operations Lead",
				IsAdmin:    true,
			},
			password: *adminPassword,
		},
		{
			employee: domain.Employee{
				EmployeeID: "EMP-002",
				FirstName:  "Bob",
				LastName:   "Builder",
				Email:      "bob@example.com",
				Department: "Engineering",
				Position:   "Developer",
			},
			password: "bob-password",
		},
		{
			employee: domain.Employee{
				EmployeeID: "EMP-003",
				FirstName:  "Carol",
				LastName:   "Chen",
				Email:      "carol@example.com",
				Department: "Sales",
				Position:   "Account Manager",
			},
			password: "carol-password",
		},
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), cfg.Auth.PasswordHashCost)
		if err != nil {
			logger.Error("hash password", slog.String("error", err.Error()))
			os.Exit(1)
		}

		emp := seed.employee
		emp.ID = uuid.New()
		emp.HireDate = today.AddDate(-1, 0, 0)
		emp.IsActive = true
		emp.PasswordHash = string(hash)

		created, err := employees.Create(ctx, &emp)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				logger.Info("employee already seeded", slog.String("email", emp.Email))
				continue
			}
			logger.Error("create employee",
				slog.String("email", emp.Email),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}

		// A week of 8-hour days, most recent first left pending for review.
		for i := 1; i <= 5; i++ {
			date := today.AddDate(0, 0, -i)
			start := date.Add(9 * time.Hour)
			end := date.Add(17*time.Hour + 30*time.Minute)

			_, err := entryRepo.Create(ctx, &domain.TimeEntry{
				ID:          uuid.New(),
				EmployeeID:  created.ID,
				Date:        date,
				StartTime:   start,
				EndTime:     end,
				BreakHours:  0.5,
				HoursWorked: domain.CalculateHours(start, end, 0.5),
				Project:     "onboarding",
				IsApproved:  i > 1,
			})
			if err != nil {
				logger.Error("create time entry",
					slog.String("email", emp.Email),
					slog.String("error", err.Error()),
				)
				os.Exit(1)
			}
		}

		logger.Info("seeded employee",
			slog.String("email", emp.Email),
			slog.Bool("is_admin", emp.IsAdmin),
		)
	}

	logger.Info("seed completed")
}
