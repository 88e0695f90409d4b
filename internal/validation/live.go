package validation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"travelease/internal/data/entity"

	"go.uber.org/zap"
)

// UniquenessSource answers the count-style existence probes behind the
// three uniqueness-checked fields.
type UniquenessSource interface {
	CountByUsernameRole(ctx context.Context, username string, role entity.UserRole) (int64, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	CountByContact(ctx context.Context, contact string) (int64, error)
}

// LiveChecker runs uniqueness checks against the store. CheckUnique is
// the synchronous core used at submission time and by the field-check
// endpoint. Schedule is the debounced per-keystroke form: a burst of
// input produces one query, and a newer value cancels the stale
// in-flight check instead of blocking on it.
type LiveChecker struct {
	source   UniquenessSource
	state    *FormState
	debounce time.Duration
	log      *zap.Logger

	// OnResult, when set before the first Schedule call, is invoked
	// after each completed asynchronous check.
	OnResult func(Field, FieldStatus)

	mu      sync.Mutex
	pending map[Field]context.CancelFunc
}

func NewLiveChecker(source UniquenessSource, state *FormState, debounce time.Duration, log *zap.Logger) *LiveChecker {
	return &LiveChecker{
		source:   source,
		state:    state,
		debounce: debounce,
		log:      log,
		pending:  make(map[Field]context.CancelFunc),
	}
}

// State exposes the form state the checker writes into.
func (lc *LiveChecker) State() *FormState {
	return lc.state
}

// CheckUnique probes the store for an existing row matching the trimmed
// value. Username is scoped to role Traveler; email and contact are
// global. A store failure is returned to the caller so it surfaces as a
// visible error; the field is never silently treated as valid or invalid.
func (lc *LiveChecker) CheckUnique(ctx context.Context, f Field, value string) (*FieldError, error) {
	value = strings.TrimSpace(value)

	var (
		count int64
		err   error
	)
	switch f {
	case FieldUsername:
		count, err = lc.source.CountByUsernameRole(ctx, value, entity.RoleTraveler)
	case FieldEmail:
		count, err = lc.source.CountByEmail(ctx, value)
	case FieldContact:
		count, err = lc.source.CountByContact(ctx, value)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("uniqueness check %s: %w", f, err)
	}
	if count > 0 {
		return &FieldError{Field: f, Notification: DuplicateNotification(f)}, nil
	}
	return nil, nil
}

// Schedule queues a debounced uniqueness check for the field's current
// value, cancelling any check still pending for the same field. The
// field moves to StatusChecking immediately and settles once the query
// returns.
func (lc *LiveChecker) Schedule(ctx context.Context, f Field, value string) {
	if !NeedsUniqueness(f) {
		return
	}

	lc.mu.Lock()
	if cancel, ok := lc.pending[f]; ok {
		cancel()
	}
	cctx, cancel := context.WithCancel(ctx)
	lc.pending[f] = cancel
	lc.mu.Unlock()

	lc.state.Touch(f)
	lc.state.SetStatus(f, StatusChecking)

	go func() {
		defer cancel()

		timer := time.NewTimer(lc.debounce)
		defer timer.Stop()
		select {
		case <-cctx.Done():
			return
		case <-timer.C:
		}

		fieldErr, err := lc.CheckUnique(cctx, f, value)
		if cctx.Err() != nil {
			// Superseded by newer input; the newer check owns the state.
			return
		}

		var st FieldStatus
		switch {
		case err != nil:
			lc.log.Error("Live uniqueness check failed",
				zap.String("field", string(f)),
				zap.Error(err),
			)
			st = StatusUnknown
			lc.state.SetStatus(f, st)
		case fieldErr != nil:
			st = StatusInvalid
			lc.state.SetInvalid(f, fieldErr.Notification)
		default:
			st = StatusValid
			lc.state.SetStatus(f, st)
		}

		if lc.OnResult != nil {
			lc.OnResult(f, st)
		}
	}()
}
