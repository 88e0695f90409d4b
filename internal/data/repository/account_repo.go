package repository

import (
	"context"
	"fmt"

	"travelease/internal/data/entity"
	"travelease/pkg/database"

	"go.uber.org/zap"
)

// AccountRepository answers the uniqueness probes against app_users.
// Username uniqueness is scoped to (username, role); email and contact
// number are unique across all roles.
type AccountRepository interface {
	CountByUsernameRole(ctx context.Context, username string, role entity.UserRole) (int64, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	CountByContact(ctx context.Context, contact string) (int64, error)
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log,
	}
}

func (ar *accountRepository) CountByUsernameRole(ctx context.Context, username string, role entity.UserRole) (int64, error) {
	query := `SELECT COUNT(*) FROM app_users WHERE username = $1 AND user_role = $2`

	var count int64
	err := ar.db.QueryRow(ctx, query, username, role).Scan(&count)
	if err != nil {
		ar.log.Error("Failed to count accounts by username",
			zap.Error(err),
			zap.String("username", username),
			zap.String("role", string(role)),
		)
		return 0, fmt.Errorf("count accounts by username %s role %s: %w", username, role, err)
	}

	return count, nil
}

func (ar *accountRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	query := `SELECT COUNT(*) FROM app_users WHERE email = $1`

	var count int64
	err := ar.db.QueryRow(ctx, query, email).Scan(&count)
	if err != nil {
		ar.log.Error("Failed to count accounts by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return 0, fmt.Errorf("count accounts by email %s: %w", email, err)
	}

	return count, nil
}

func (ar *accountRepository) CountByContact(ctx context.Context, contact string) (int64, error) {
	query := `SELECT COUNT(*) FROM app_users WHERE contact_number = $1`

	var count int64
	err := ar.db.QueryRow(ctx, query, contact).Scan(&count)
	if err != nil {
		ar.log.Error("Failed to count accounts by contact number",
			zap.Error(err),
			zap.String("contact_number", contact),
		)
		return 0, fmt.Errorf("count accounts by contact number %s: %w", contact, err)
	}

	return count, nil
}
