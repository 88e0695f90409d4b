package adaptor

import (
	"travelease/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Registration *RegistrationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Registration: NewRegistrationHandler(service.Registration, log),
	}
}
