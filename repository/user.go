package repository

import (
	"context"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
)

// UserRepository is the credential store. Password verification is delegated
// to the database so the stored hash never has to be interpreted in-process.
type UserRepository interface {
	FindActiveByLogin(ctx context.Context, login string) (*domain.User, error)
	VerifyPassword(ctx context.Context, plaintext, storedHash string) (bool, error)
	TouchLastLogin(ctx context.Context, userID int64) error
	IsActive(ctx context.Context, userID int64) (bool, error)
}
