package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) FindActiveByLogin(ctx context.Context, login string) (*domain.User, error) {
	const query = `
		SELECT userid, login, password, tipo, id_original, ativo = 'S', ultimo_login
		FROM users
		WHERE login = $1 AND ativo = 'S'
	`
	row := r.pool.QueryRow(ctx, query, login)

	var user domain.User
	var roleText string

	if err := row.Scan(&user.ID, &user.Login, &user.Password, &roleText, &user.OriginalID, &user.Active, &user.LastLogin); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeInternal, "user lookup failed", err)
	}

	role, err := domain.ParseRole(roleText)
	if err != nil {
		return nil, err
	}
	user.Role = role

	return &user, nil
}

// VerifyPassword delegates to the verify_scram_hash SQL function. The hash
// stays opaque to the application.
func (r *userRepository) VerifyPassword(ctx context.Context, plaintext, storedHash string) (bool, error) {
	const query = `SELECT verify_scram_hash($1, $2)`

	var valid bool
	if err := r.pool.QueryRow(ctx, query, plaintext, storedHash).Scan(&valid); err != nil {
		return false, domain.WrapError(domain.ErrCodeInternal, "password verification failed", err)
	}
	return valid, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, userID int64) error {
	const query = `
		UPDATE users
		SET ultimo_login = CURRENT_TIMESTAMP
		WHERE userid = $1
	`
	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "last login update failed", err)
	}
	return nil
}

func (r *userRepository) IsActive(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE userid = $1 AND ativo = 'S')`

	var active bool
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&active); err != nil {
		return false, domain.WrapError(domain.ErrCodeInternal, "user activity check failed", err)
	}
	return active, nil
}
