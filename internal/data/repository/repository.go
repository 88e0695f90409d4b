package repository

import (
	"travelease/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Account      AccountRepository
	Registration RegistrationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Account:      NewAccountRepository(db, log),
		Registration: NewRegistrationRepository(db, log),
	}
}
