package usecase

import (
	"travelease/internal/data/repository"
	"travelease/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Registration RegistrationService
}

func NewService(repo *repository.Repository, config *utils.Config, hasher utils.PasswordHasher, log *zap.Logger) *Service {
	return &Service{
		Registration: NewRegistrationService(repo, config, hasher, log),
	}
}
