package validation

import "sync"

// FieldStatus is the explicit per-field validity state, decoupled from
// any rendering concern.
type FieldStatus int

const (
	// StatusUnknown means the field has not been validated, or a check
	// failed before producing a verdict.
	StatusUnknown FieldStatus = iota
	// StatusChecking means an asynchronous uniqueness check is in flight.
	StatusChecking
	StatusValid
	StatusInvalid
)

func (s FieldStatus) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// FormState tracks per-field validity plus the set of fields the user
// has touched. Safe for concurrent use: the live checker updates it from
// its worker goroutines.
type FormState struct {
	mu      sync.Mutex
	status  map[Field]FieldStatus
	reasons map[Field]Notification
	touched map[Field]bool
}

func NewFormState() *FormState {
	return &FormState{
		status:  make(map[Field]FieldStatus),
		reasons: make(map[Field]Notification),
		touched: make(map[Field]bool),
	}
}

// Touch records that the user has entered the field.
func (fs *FormState) Touch(f Field) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.touched[f] = true
}

// SetStatus sets the field status and clears any stale invalid reason.
func (fs *FormState) SetStatus(f Field, st FieldStatus) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.status[f] = st
	if st != StatusInvalid {
		delete(fs.reasons, f)
	}
}

// SetInvalid marks the field invalid with the notification explaining why.
func (fs *FormState) SetInvalid(f Field, n Notification) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.status[f] = StatusInvalid
	fs.reasons[f] = n
}

func (fs *FormState) Status(f Field) FieldStatus {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.status[f]
}

// Reason returns the invalid notification for the field, if any.
func (fs *FormState) Reason(f Field) (Notification, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, ok := fs.reasons[f]
	return n, ok
}

// Dirty reports whether any field has been touched since the last Reset.
func (fs *FormState) Dirty() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.touched) > 0
}

// Reset returns the form to its pristine state.
func (fs *FormState) Reset() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.status = make(map[Field]FieldStatus)
	fs.reasons = make(map[Field]Notification)
	fs.touched = make(map[Field]bool)
}
