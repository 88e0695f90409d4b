package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"travelease/internal/dto/request"
	"travelease/internal/usecase"
	"travelease/internal/validation"
	"travelease/pkg/utils"

	"go.uber.org/zap"
)

type RegistrationHandler struct {
	service usecase.RegistrationService
	log     *zap.Logger
}

func NewRegistrationHandler(service usecase.RegistrationService, log *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/traveler/register
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterTravelerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, resp.Notification.Message, resp)
}

// CheckField handles POST /api/traveler/check-field
func (h *RegistrationHandler) CheckField(w http.ResponseWriter, r *http.Request) {
	var req request.FieldCheckRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.CheckField(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "check field")
		return
	}

	utils.ResponseSuccess(w, "Field checked", resp)
}

// ClearForm handles POST /api/traveler/clear-form
func (h *RegistrationHandler) ClearForm(w http.ResponseWriter, r *http.Request) {
	var req request.ClearFormRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp := h.service.ConfirmClear(&req)
	utils.ResponseSuccess(w, "Clear form", resp)
}

// Preferences handles GET /api/traveler/preferences
func (h *RegistrationHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Traveler preferences", h.service.Preferences())
}

// handleServiceError maps service errors onto the response envelope.
// Field errors keep their verbatim notification; everything else is
// wrapped in the OPERATION FAILED message the desktop screen showed.
func (h *RegistrationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		if fieldErr.Notification.Severity == validation.SeverityError {
			// Uniqueness conflict
			utils.ResponseConflict(w, fieldErr.Notification.Message, fieldErr.Notification)
			return
		}
		utils.ResponseBadRequest(w, fieldErr.Notification.Message, fieldErr.Notification)
	case errors.Is(err, usecase.ErrCheckUnavailable):
		h.log.Error("Store unreachable", zap.String("operation", operation), zap.Error(err))
		utils.ResponseBadGateway(w, err.Error())
	default:
		h.log.Error("Service error", zap.String("operation", operation), zap.Error(err))
		utils.ResponseInternalError(w, "OPERATION FAILED:\n"+err.Error())
	}
}
