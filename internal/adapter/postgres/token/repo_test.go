package token_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/worktracker-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/worktracker-backend/internal/domain"
)

func newRepo(t *testing.T) (*token.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return token.New(pool), pool
}

func newHash() string {
	sum := sha256.Sum256([]byte(uuid.New().String()))
	return hex.EncodeToString(sum[:])
}

func TestRepo_Create_AndGetByHash(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	emp := testhelper.SeedEmployee(t, pool)
	hash := newHash()

	err := repo.Create(ctx, &domain.RefreshToken{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		TokenHash:  hash,
		ExpiresAt:  time.Now().UTC().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash: unexpected error: %v", err)
	}
	if got.EmployeeID != emp.ID {
		t.Errorf("EmployeeID mismatch: got %s, want %s", got.EmployeeID, emp.ID)
	}
	if got.IsRevoked() {
		t.Error("expected token to not be revoked")
	}
}

func TestRepo_GetByHash_Expired(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	emp := testhelper.SeedEmployee(t, pool)
	hash := newHash()

	err := repo.Create(ctx, &domain.RefreshToken{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		TokenHash:  hash,
		ExpiresAt:  time.Now().UTC().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	_, err = repo.GetByHash(ctx, hash)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for expired token, got %v", err)
	}
}

func TestRepo_RevokeByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	emp := testhelper.SeedEmployee(t, pool)
	hash := newHash()
	id := uuid.New()

	err := repo.Create(ctx, &domain.RefreshToken{
		ID:         id,
		EmployeeID: emp.ID,
		TokenHash:  hash,
		ExpiresAt:  time.Now().UTC().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if err := repo.RevokeByID(ctx, id); err != nil {
		t.Fatalf("RevokeByID: unexpected error: %v", err)
	}

	_, err = repo.GetByHash(ctx, hash)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after revoke, got %v", err)
	}

	// Idempotent.
	if err := repo.RevokeByID(ctx, id); err != nil {
		t.Errorf("RevokeByID (second): unexpected error: %v", err)
	}
}

func TestRepo_RevokeAllByEmployee(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	emp := testhelper.SeedEmployee(t, pool)
	hashes := []string{newHash(), newHash()}
	for _, h := range hashes {
		err := repo.Create(ctx, &domain.RefreshToken{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			TokenHash:  h,
			ExpiresAt:  time.Now().UTC().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("Create: unexpected error: %v", err)
		}
	}

	if err := repo.RevokeAllByEmployee(ctx, emp.ID); err != nil {
		t.Fatalf("RevokeAllByEmployee: unexpected error: %v", err)
	}

	for _, h := range hashes {
		if _, err := repo.GetByHash(ctx, h); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound after revoke-all, got %v", err)
		}
	}
}

func TestRepo_DeleteExpired(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	emp := testhelper.SeedEmployee(t, pool)

	err := repo.Create(ctx, &domain.RefreshToken{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		TokenHash:  newHash(),
		ExpiresAt:  time.Now().UTC().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	deleted, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired: unexpected error: %v", err)
	}
	if deleted < 1 {
		t.Errorf("DeleteExpired: got %d deletions, want at least 1", deleted)
	}
}
