package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"travelease/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	usernames map[string]int64
	emails    map[string]int64
	contacts  map[string]int64
	err       error
}

func (f *fakeSource) CountByUsernameRole(_ context.Context, username string, _ entity.UserRole) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.usernames[username], nil
}

func (f *fakeSource) CountByEmail(_ context.Context, email string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.emails[email], nil
}

func (f *fakeSource) CountByContact(_ context.Context, contact string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.contacts[contact], nil
}

func newTestChecker(src *fakeSource) *LiveChecker {
	return NewLiveChecker(src, NewFormState(), 5*time.Millisecond, zap.NewNop())
}

func TestCheckUniqueConflicts(t *testing.T) {
	src := &fakeSource{
		usernames: map[string]int64{"takenuser": 1},
		emails:    map[string]int64{"dup@x.co": 1},
		contacts:  map[string]int64{"03001234567": 2},
	}
	lc := newTestChecker(src)
	ctx := context.Background()

	fieldErr, err := lc.CheckUnique(ctx, FieldUsername, "takenuser")
	require.NoError(t, err)
	require.NotNil(t, fieldErr)
	assert.Equal(t, MsgDuplicateUsername, fieldErr.Notification.Message)
	assert.Equal(t, TitleDuplicateUsername, fieldErr.Notification.Title)

	fieldErr, err = lc.CheckUnique(ctx, FieldEmail, " dup@x.co ")
	require.NoError(t, err)
	require.NotNil(t, fieldErr, "value is trimmed before the probe")
	assert.Equal(t, MsgDuplicateEmail, fieldErr.Notification.Message)

	fieldErr, err = lc.CheckUnique(ctx, FieldContact, "03001234567")
	require.NoError(t, err)
	require.NotNil(t, fieldErr)
	assert.Equal(t, MsgDuplicateContact, fieldErr.Notification.Message)

	fieldErr, err = lc.CheckUnique(ctx, FieldUsername, "freshuser")
	require.NoError(t, err)
	assert.Nil(t, fieldErr)

	// Fields without a uniqueness constraint are a no-op.
	fieldErr, err = lc.CheckUnique(ctx, FieldName, "whatever")
	require.NoError(t, err)
	assert.Nil(t, fieldErr)
}

func TestCheckUniqueFailsClosed(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	lc := newTestChecker(src)

	fieldErr, err := lc.CheckUnique(context.Background(), FieldUsername, "anyuser1")
	require.Error(t, err)
	assert.Nil(t, fieldErr, "a store failure never yields a verdict")
}

func TestScheduleSettlesState(t *testing.T) {
	src := &fakeSource{usernames: map[string]int64{"takenuser": 1}}
	lc := newTestChecker(src)

	results := make(chan FieldStatus, 4)
	lc.OnResult = func(_ Field, st FieldStatus) { results <- st }

	lc.Schedule(context.Background(), FieldUsername, "takenuser")
	assert.Equal(t, StatusChecking, lc.State().Status(FieldUsername))

	select {
	case st := <-results:
		assert.Equal(t, StatusInvalid, st)
	case <-time.After(time.Second):
		t.Fatal("check never completed")
	}

	reason, ok := lc.State().Reason(FieldUsername)
	require.True(t, ok)
	assert.Equal(t, MsgDuplicateUsername, reason.Message)
	assert.True(t, lc.State().Dirty())
}

func TestScheduleDebounceCancelsStaleCheck(t *testing.T) {
	src := &fakeSource{usernames: map[string]int64{"takenuser": 1}}
	lc := newTestChecker(src)

	results := make(chan FieldStatus, 4)
	lc.OnResult = func(_ Field, st FieldStatus) { results <- st }

	ctx := context.Background()
	// Two keystrokes inside the debounce window: only the newer value
	// is ever queried.
	lc.Schedule(ctx, FieldUsername, "takenuser")
	lc.Schedule(ctx, FieldUsername, "freshuser")

	select {
	case st := <-results:
		assert.Equal(t, StatusValid, st)
	case <-time.After(time.Second):
		t.Fatal("check never completed")
	}
	assert.Equal(t, StatusValid, lc.State().Status(FieldUsername))

	select {
	case st := <-results:
		t.Fatalf("stale check produced a result: %v", st)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestScheduleStoreErrorLeavesFieldUnknown(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	lc := newTestChecker(src)

	results := make(chan FieldStatus, 1)
	lc.OnResult = func(_ Field, st FieldStatus) { results <- st }

	lc.Schedule(context.Background(), FieldUsername, "anyuser1")

	select {
	case st := <-results:
		assert.Equal(t, StatusUnknown, st, "integration errors never mark the field valid or invalid")
	case <-time.After(time.Second):
		t.Fatal("check never completed")
	}
}

func TestScheduleIgnoresNonUniquenessFields(t *testing.T) {
	lc := newTestChecker(&fakeSource{})
	lc.Schedule(context.Background(), FieldName, "John Traveler")
	assert.Equal(t, StatusUnknown, lc.State().Status(FieldName))
	assert.False(t, lc.State().Dirty())
}
