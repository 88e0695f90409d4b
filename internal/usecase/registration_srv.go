package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travelease/internal/data/entity"
	"travelease/internal/data/repository"
	"travelease/internal/dto/request"
	"travelease/internal/dto/response"
	"travelease/internal/validation"
	"travelease/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrCheckUnavailable marks a uniqueness check that could not reach the
// store. It always surfaces as a visible failure; a field is never
// treated as valid or invalid on an integration error.
var ErrCheckUnavailable = errors.New("UNIQUENESS CHECK FAILED")

type RegistrationService interface {
	Register(ctx context.Context, req *request.RegisterTravelerRequest) (*response.RegisterResponse, error)
	CheckField(ctx context.Context, req *request.FieldCheckRequest) (*response.FieldCheckResponse, error)
	ConfirmClear(req *request.ClearFormRequest) *response.ClearFormResponse
	Preferences() *response.PreferencesResponse
}

type registrationService struct {
	repo    *repository.Repository
	hasher  utils.PasswordHasher
	checker *validation.LiveChecker
	log     *zap.Logger
}

func NewRegistrationService(
	repo *repository.Repository,
	config *utils.Config,
	hasher utils.PasswordHasher,
	log *zap.Logger,
) RegistrationService {
	return &registrationService{
		repo:    repo,
		hasher:  hasher,
		checker: validation.NewLiveChecker(repo.Account, validation.NewFormState(), config.Validation.CheckDebounce, log),
		log:     log.With(zap.String("service", "registration")),
	}
}

// Register runs the full-form gate in fixed field order, then persists
// the account + profile pair atomically.
func (s *registrationService) Register(ctx context.Context, req *request.RegisterTravelerRequest) (*response.RegisterResponse, error) {
	in := formInput(req)

	// 1. Fixed-order gate: first failing field aborts with its own
	// message, no partial reporting of multiple errors.
	for _, f := range validation.SubmitOrder {
		if fieldErr := validation.CheckFormat(f, in); fieldErr != nil {
			s.log.Warn("Registration blocked by field validation",
				zap.String("field", string(f)),
			)
			return nil, fieldErr
		}

		if !validation.NeedsUniqueness(f) {
			continue
		}
		fieldErr, err := s.checker.CheckUnique(ctx, f, in.Value(f))
		if err != nil {
			s.log.Error("Uniqueness check unavailable",
				zap.String("field", string(f)),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %v", ErrCheckUnavailable, err)
		}
		if fieldErr != nil {
			s.log.Warn("Registration blocked by uniqueness conflict",
				zap.String("field", string(f)),
			)
			return nil, fieldErr
		}
	}

	// 2. Digest the password.
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Atomic two-row insert.
	account := &entity.Account{
		Username:      trimmed(req.Username),
		PasswordHash:  digest,
		ContactNumber: trimmed(req.ContactNumber),
		Email:         trimmed(req.Email),
		Role:          entity.RoleTraveler,
	}
	profile := &entity.TravelerProfile{
		CNIC:         trimmed(req.CNIC),
		TravelerName: trimmed(req.TravelerName),
		Preference:   req.Preference,
	}

	userID, err := s.repo.Registration.CreateTraveler(ctx, account, profile)
	if err != nil {
		s.log.Error("Registration failed",
			zap.Error(err),
			zap.String("username", account.Username),
		)
		return nil, err
	}

	refID := uuid.New().String()
	s.log.Info("Traveler registered",
		zap.Int64("user_id", userID),
		zap.String("username", account.Username),
		zap.String("reference_id", refID),
	)

	return &response.RegisterResponse{
		UserID:      userID,
		ReferenceID: refID,
		Role:        entity.RoleTraveler,
		Notification: validation.Notification{
			Title:    "SUCCESS",
			Message:  "TRAVELER REGISTERED SUCCESSFULLY! PENDING FOR APPROAL",
			Severity: validation.SeverityInformation,
			Buttons:  []string{"OK"},
		},
		CloseScreen: true,
	}, nil
}

// CheckField is the live per-field validation: input filter, format
// rule, then the uniqueness probe for username/email/contact. Format
// failures only flag the field; the modal notification is reserved for
// uniqueness conflicts, matching the desktop screen.
func (s *registrationService) CheckField(ctx context.Context, req *request.FieldCheckRequest) (*response.FieldCheckResponse, error) {
	f := validation.Field(req.Field)
	if !validation.KnownField(f) {
		return nil, fmt.Errorf("unknown field %q", req.Field)
	}

	filtered := validation.FilterInput(f, req.Value)
	resp := &response.FieldCheckResponse{
		Field:         req.Field,
		FilteredValue: filtered,
	}
	if f == validation.FieldPreference {
		resp.FilteredValue = req.Value
	}

	in := validation.FormInput{Password: req.Password}
	switch f {
	case validation.FieldName:
		in.TravelerName = filtered
	case validation.FieldCNIC:
		in.CNIC = filtered
	case validation.FieldUsername:
		in.Username = filtered
	case validation.FieldEmail:
		in.Email = filtered
	case validation.FieldContact:
		in.ContactNumber = filtered
	case validation.FieldPassword:
		in.Password = filtered
	case validation.FieldConfirmPassword:
		in.ConfirmPassword = filtered
	case validation.FieldPreference:
		in.Preference = req.Value
	}

	if fieldErr := validation.CheckFormat(f, in); fieldErr != nil {
		resp.Status = validation.StatusInvalid.String()
		return resp, nil
	}

	if validation.NeedsUniqueness(f) {
		fieldErr, err := s.checker.CheckUnique(ctx, f, in.Value(f))
		if err != nil {
			s.log.Error("Live uniqueness check unavailable",
				zap.String("field", req.Field),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %v", ErrCheckUnavailable, err)
		}
		if fieldErr != nil {
			resp.Status = validation.StatusInvalid.String()
			resp.Notification = &fieldErr.Notification
			return resp, nil
		}
	}

	resp.Status = validation.StatusValid.String()
	return resp, nil
}

// ConfirmClear implements the cancel-button flow: clearing a form that
// holds data requires a Yes/No confirmation first.
func (s *registrationService) ConfirmClear(req *request.ClearFormRequest) *response.ClearFormResponse {
	in := validation.FormInput{
		TravelerName:    req.TravelerName,
		CNIC:            req.CNIC,
		Username:        req.Username,
		Email:           req.Email,
		ContactNumber:   req.ContactNumber,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Preference:      req.Preference,
	}

	if in.HasData() && !req.Confirmed {
		return &response.ClearFormResponse{
			RequiresConfirmation: true,
			Notification: &validation.Notification{
				Title:    "CONFIRM CLEAR",
				Message:  "THIS WILL CLEAR THE FORM.DO YOU WANT TO CONTINUE ? ",
				Severity: validation.SeverityWarning,
				Buttons:  []string{"YES", "NO"},
			},
		}
	}

	return &response.ClearFormResponse{CloseScreen: true}
}

// Preferences returns the catalogue in display order, placeholder first.
func (s *registrationService) Preferences() *response.PreferencesResponse {
	return &response.PreferencesResponse{
		Placeholder: entity.PreferencePlaceholder,
		Preferences: entity.Preferences[1:],
	}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func formInput(req *request.RegisterTravelerRequest) validation.FormInput {
	return validation.FormInput{
		TravelerName:    req.TravelerName,
		CNIC:            req.CNIC,
		Username:        req.Username,
		Email:           req.Email,
		ContactNumber:   req.ContactNumber,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Preference:      req.Preference,
	}
}
