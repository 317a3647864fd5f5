package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	"chat-service/internal/domain"
	"chat-service/pkg/xerrors"
)

// Route the client is sent to after a successful registration.
const routeAfterSignup = "Login"

// RegisterUsecase drives one registration attempt at a time: structural
// validation, concurrent email/username uniqueness checks, then the two-step
// provisioning sequence (credential, then profile document keyed by the
// credential id).
type RegisterUsecase struct {
	identity  IdentityProvider
	store     DocumentStore
	notifier  Notifier
	navigator Navigator

	mu    sync.Mutex
	state domain.SubmissionState
}

func NewRegisterUsecase(identity IdentityProvider, store DocumentStore, notifier Notifier, navigator Navigator) *RegisterUsecase {
	return &RegisterUsecase{
		identity:  identity,
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		state:     domain.SubmissionIdle,
	}
}

// SubmitResult is what a finished (or structurally rejected) submission left
// behind: the terminal state and the per-field error set.
type SubmitResult struct {
	State       domain.SubmissionState `json:"state"`
	FieldErrors map[string]string      `json:"fieldErrors,omitempty"`
}

// State returns the current submission lifecycle state.
func (uc *RegisterUsecase) State() domain.SubmissionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Submit runs one registration attempt against a form snapshot. A submit that
// arrives while another is in flight is rejected outright, not queued.
func (uc *RegisterUsecase) Submit(ctx context.Context, snap domain.RegistrationSnapshot) (*SubmitResult, error) {
	uc.mu.Lock()
	if uc.state == domain.SubmissionValidating || uc.state == domain.SubmissionProvisioning {
		uc.mu.Unlock()
		return nil, xerrors.ErrSubmissionInFlight
	}
	uc.state = domain.SubmissionValidating
	uc.mu.Unlock()

	if errs := validateSnapshot(snap); len(errs) > 0 {
		return uc.fail(errs, ""), nil
	}

	// Both uniqueness checks run concurrently against the snapshot values.
	var emailFree, usernameFree bool
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		emailFree = checkAvailability(ctx, uc.store, domain.FieldEmail, strings.TrimSpace(snap.Email))
	}()
	go func() {
		defer wg.Done()
		usernameFree = checkAvailability(ctx, uc.store, domain.FieldUsername, strings.TrimSpace(snap.Username))
	}()
	wg.Wait()

	// Only one conflict is surfaced per attempt; email takes precedence.
	if !emailFree {
		return uc.fail(map[string]string{domain.FieldEmail: domain.MsgEmailRegistered}, ""), nil
	}
	if !usernameFree {
		return uc.fail(map[string]string{domain.FieldUsername: domain.MsgUsernameTaken}, ""), nil
	}

	uc.setState(domain.SubmissionProvisioning)

	credID, err := uc.identity.CreateCredential(ctx, snap.Email, snap.Password)
	if err != nil {
		log.Printf("[WARN] credential creation failed: %v", err)
		return uc.fail(nil, domain.MsgAccountCreateFail), nil
	}

	fields := map[string]any{
		"name":     strings.TrimSpace(snap.Name),
		"email":    strings.TrimSpace(snap.Email),
		"username": strings.TrimSpace(snap.Username),
	}
	if err := uc.store.WriteDocument(ctx, usersCollection, credID, fields); err != nil {
		// The credential exists but the profile does not. No rollback is
		// attempted; the orphan is logged for operators.
		log.Printf("[WARN] orphaned credential %s: profile write failed: %v", credID, err)
		return uc.fail(nil, domain.MsgAccountCreateFail), nil
	}

	uc.setState(domain.SubmissionSucceeded)
	uc.notifier.Notify(domain.MsgAccountCreated)
	uc.navigator.Navigate(routeAfterSignup)

	return &SubmitResult{State: domain.SubmissionSucceeded}, nil
}

// validateSnapshot runs the synchronous structural checks: required fields and
// password confirmation. No network access.
func validateSnapshot(snap domain.RegistrationSnapshot) map[string]string {
	errs := make(map[string]string)

	if snap.Name == "" {
		errs[domain.FieldName] = domain.MsgNameRequired
	}
	if snap.Username == "" {
		errs[domain.FieldUsername] = domain.MsgUsernameRequired
	}
	if snap.Email == "" {
		errs[domain.FieldEmail] = domain.MsgEmailRequired
	}
	if snap.Password == "" {
		errs[domain.FieldPassword] = domain.MsgPasswordRequired
	}
	if snap.Password != snap.ConfirmPassword {
		errs[domain.FieldConfirmPassword] = domain.MsgPasswordMismatch
	}

	return errs
}

func (uc *RegisterUsecase) fail(fieldErrs map[string]string, notice string) *SubmitResult {
	uc.setState(domain.SubmissionFailed)
	if notice != "" {
		uc.notifier.Notify(notice)
	}
	return &SubmitResult{State: domain.SubmissionFailed, FieldErrors: fieldErrs}
}

func (uc *RegisterUsecase) setState(s domain.SubmissionState) {
	uc.mu.Lock()
	uc.state = s
	uc.mu.Unlock()
}
