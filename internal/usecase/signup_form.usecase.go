package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"chat-service/internal/domain"
)

// DebounceDelay is how long after the last username edit a uniqueness check is
// issued. Any edit inside the window replaces the pending timer.
const DebounceDelay = 500 * time.Millisecond

// FormController owns the live registration form: per-field values and inline
// errors. Editing a field clears its error immediately; the username field
// additionally schedules a debounced availability check whose result is only
// applied if the field still holds the value that was queried.
type FormController struct {
	store    DocumentStore
	debounce time.Duration

	mu       sync.Mutex
	fields   map[string]*domain.FormField
	timers   map[string]*time.Timer
	onResult func(field, errMsg string)
}

func NewFormController(store DocumentStore, debounce time.Duration) *FormController {
	return &FormController{
		store:    store,
		debounce: debounce,
		fields:   make(map[string]*domain.FormField),
		timers:   make(map[string]*time.Timer),
	}
}

// SetResultHook registers a callback invoked whenever a debounced check result
// is applied to error state. Used to push inline errors to the client.
func (c *FormController) SetResultHook(fn func(field, errMsg string)) {
	c.mu.Lock()
	c.onResult = fn
	c.mu.Unlock()
}

// SetValue records an edit. It returns true if a debounced availability check
// was scheduled for the field.
func (c *FormController) SetValue(field, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := c.field(field)
	f.Value = value
	f.Error = ""

	if field != domain.FieldUsername {
		return false
	}

	// Replace any pending timer; the old one never fires.
	if t := c.timers[field]; t != nil {
		t.Stop()
		delete(c.timers, field)
	}
	if strings.TrimSpace(value) == "" {
		return false
	}

	queried := value
	c.timers[field] = time.AfterFunc(c.debounce, func() {
		c.resolveCheck(field, queried)
	})
	return true
}

// resolveCheck runs the availability query and applies the outcome, unless the
// field moved on while the check was in flight.
func (c *FormController) resolveCheck(field, queried string) {
	available := c.CheckAvailability(context.Background(), field, queried)

	c.mu.Lock()
	f := c.field(field)
	if f.Value != queried {
		// Edited since the check was issued; discard silently.
		c.mu.Unlock()
		return
	}
	errMsg := ""
	if !available {
		errMsg = domain.MsgUsernameTaken
	}
	f.Error = errMsg
	hook := c.onResult
	c.mu.Unlock()

	if hook != nil {
		hook(field, errMsg)
	}
}

// CheckAvailability reports whether a field value is free, fail-closed.
func (c *FormController) CheckAvailability(ctx context.Context, field, value string) bool {
	return checkAvailability(ctx, c.store, field, strings.TrimSpace(value))
}

// Value returns the live value of a field.
func (c *FormController) Value(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field(field).Value
}

// Errors returns a copy of the current per-field error set, empty entries
// omitted.
func (c *FormController) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := make(map[string]string)
	for name, f := range c.fields {
		if f.Error != "" {
			errs[name] = f.Error
		}
	}
	return errs
}

// Snapshot copies the committed form values so submission operates on one
// consistent view even while the user keeps typing.
func (c *FormController) Snapshot() domain.RegistrationSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return domain.RegistrationSnapshot{
		Name:            c.field(domain.FieldName).Value,
		Username:        c.field(domain.FieldUsername).Value,
		Email:           c.field(domain.FieldEmail).Value,
		Password:        c.field(domain.FieldPassword).Value,
		ConfirmPassword: c.field(domain.FieldConfirmPassword).Value,
	}
}

// field returns the state for a field, creating it on first touch. Caller
// holds the lock.
func (c *FormController) field(name string) *domain.FormField {
	f, ok := c.fields[name]
	if !ok {
		f = &domain.FormField{Name: name}
		c.fields[name] = f
	}
	return f
}
