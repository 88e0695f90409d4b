package repository

import (
	"context"
	"errors"
	"fmt"

	"travelease/internal/data/entity"
	"travelease/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Persistence failure messages. Part of the user-visible contract: they
// surface verbatim inside the OPERATION FAILED notification.
var (
	ErrInsertAccount = errors.New("FAILED TO INSERT USER RECORD")
	ErrInsertProfile = errors.New("FAILED TO INSERT TRAVELER RECORD")
)

// RegistrationRepository persists the account + traveler profile pair.
type RegistrationRepository interface {
	// CreateTraveler inserts both rows in a single transaction and
	// returns the generated account identity. Either both rows commit
	// or neither does; a concurrent reader can never observe an account
	// without its profile.
	CreateTraveler(ctx context.Context, account *entity.Account, profile *entity.TravelerProfile) (int64, error)
}

type registrationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRegistrationRepository(db database.PgxIface, log *zap.Logger) RegistrationRepository {
	return &registrationRepository{
		db:  db,
		log: log,
	}
}

func (rr *registrationRepository) CreateTraveler(ctx context.Context, account *entity.Account, profile *entity.TravelerProfile) (int64, error) {
	tx, err := rr.db.Begin(ctx)
	if err != nil {
		rr.log.Error("Failed to begin registration transaction", zap.Error(err))
		return 0, fmt.Errorf("begin registration tx: %w", err)
	}
	// Rollback is a no-op after a successful commit. A rollback failure
	// is recorded but never masks the error that triggered it.
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			rr.log.Error("Rollback failed", zap.Error(rbErr))
		}
	}()

	var userID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO app_users (username, user_password, contact_number, email, user_role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id
	`,
		account.Username,
		account.PasswordHash,
		account.ContactNumber,
		account.Email,
		account.Role,
	).Scan(&userID)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrInsertAccount
	}
	if err != nil {
		rr.log.Error("Failed to insert account",
			zap.Error(err),
			zap.String("username", account.Username),
			zap.String("email", account.Email),
		)
		return 0, fmt.Errorf("insert account %s: %w", account.Username, err)
	}
	if userID == 0 {
		return 0, ErrInsertAccount
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO traveler (user_id, cnic, traveler_name, preference)
		VALUES ($1, $2, $3, $4)
	`,
		userID,
		profile.CNIC,
		profile.TravelerName,
		profile.Preference,
	)
	if err != nil {
		rr.log.Error("Failed to insert traveler profile",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("insert traveler profile for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, ErrInsertProfile
	}

	if err := tx.Commit(ctx); err != nil {
		rr.log.Error("Failed to commit registration transaction",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("commit registration tx: %w", err)
	}

	account.ID = userID
	profile.UserID = userID
	return userID, nil
}
