package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-service/internal/domain"
	"chat-service/pkg/xerrors"
)

func validSnapshot() domain.RegistrationSnapshot {
	return domain.RegistrationSnapshot{
		Name:            "Ann",
		Username:        "ann1",
		Email:           "ann@x.com",
		Password:        "p@ss1234",
		ConfirmPassword: "p@ss1234",
	}
}

func TestSubmitHappyPath(t *testing.T) {
	store := newFakeStore()
	id := &fakeIdentity{id: "cred-1"}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	res, err := uc.Submit(context.Background(), validSnapshot())
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionSucceeded, res.State)
	assert.Empty(t, res.FieldErrors)
	assert.Equal(t, domain.SubmissionSucceeded, uc.State())

	require.Len(t, store.writes, 1)
	w := store.writes[0]
	assert.Equal(t, "users", w.collection)
	assert.Equal(t, "cred-1", w.id)
	assert.Equal(t, map[string]any{
		"name":     "Ann",
		"email":    "ann@x.com",
		"username": "ann1",
	}, w.fields)

	assert.Equal(t, []string{domain.MsgAccountCreated}, rec.allNotices())
	assert.Equal(t, []string{"Login"}, rec.allRoutes(), "navigation signal emitted exactly once")
}

func TestSubmitTrimsProfileFields(t *testing.T) {
	store := newFakeStore()
	id := &fakeIdentity{id: "cred-9"}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	snap := validSnapshot()
	snap.Name = "  Ann "
	snap.Username = " ann1 "
	snap.Email = " ann@x.com "

	res, err := uc.Submit(context.Background(), snap)
	require.NoError(t, err)
	require.Equal(t, domain.SubmissionSucceeded, res.State)

	require.Len(t, store.writes, 1)
	assert.Equal(t, map[string]any{
		"name":     "Ann",
		"email":    "ann@x.com",
		"username": "ann1",
	}, store.writes[0].fields)
}

func TestSubmitPasswordMismatchStopsBeforeAnyRemoteCall(t *testing.T) {
	store := newFakeStore()
	id := &fakeIdentity{id: "cred-1"}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	snap := validSnapshot()
	snap.Password = "abc12345"
	snap.ConfirmPassword = "abc12346"

	res, err := uc.Submit(context.Background(), snap)
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionFailed, res.State)
	assert.Equal(t, map[string]string{
		domain.FieldConfirmPassword: domain.MsgPasswordMismatch,
	}, res.FieldErrors)

	assert.Zero(t, store.queryCount(), "structural failure must not reach the store")
	assert.Zero(t, id.callCount())
	assert.Empty(t, rec.allNotices())
}

func TestSubmitRequiredFields(t *testing.T) {
	store := newFakeStore()
	uc := NewRegisterUsecase(&fakeIdentity{}, store, &signalRecorder{}, &signalRecorder{})

	res, err := uc.Submit(context.Background(), domain.RegistrationSnapshot{})
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionFailed, res.State)
	assert.Equal(t, map[string]string{
		domain.FieldName:     domain.MsgNameRequired,
		domain.FieldUsername: domain.MsgUsernameRequired,
		domain.FieldEmail:    domain.MsgEmailRequired,
		domain.FieldPassword: domain.MsgPasswordRequired,
	}, res.FieldErrors)
	assert.Zero(t, store.queryCount())
}

func TestSubmitEmailConflictTakesPrecedence(t *testing.T) {
	store := newFakeStore()
	store.take(domain.FieldEmail, "ann@x.com")
	store.take(domain.FieldUsername, "ann1")
	id := &fakeIdentity{id: "cred-1"}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	res, err := uc.Submit(context.Background(), validSnapshot())
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionFailed, res.State)
	assert.Equal(t, map[string]string{
		domain.FieldEmail: domain.MsgEmailRegistered,
	}, res.FieldErrors, "only the email error surfaces when both conflict")

	assert.Zero(t, id.callCount(), "provisioning must never start")
	assert.Zero(t, store.writeCount())
}

func TestSubmitUsernameConflict(t *testing.T) {
	store := newFakeStore()
	store.take(domain.FieldUsername, "ann1")
	uc := NewRegisterUsecase(&fakeIdentity{id: "x"}, store, &signalRecorder{}, &signalRecorder{})

	res, err := uc.Submit(context.Background(), validSnapshot())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		domain.FieldUsername: domain.MsgUsernameTaken,
	}, res.FieldErrors)
}

func TestSubmitRunsBothChecksAgainstSnapshot(t *testing.T) {
	store := newFakeStore()
	uc := NewRegisterUsecase(&fakeIdentity{id: "x"}, store, &signalRecorder{}, &signalRecorder{})

	_, err := uc.Submit(context.Background(), validSnapshot())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"email:ann@x.com", "username:ann1"}, store.allQueries())
}

func TestSubmitRejectsWhileInFlight(t *testing.T) {
	store := newFakeStore()
	store.started = make(chan string, 2)
	store.block = make(chan struct{})
	id := &fakeIdentity{id: "cred-1"}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	type outcome struct {
		res *SubmitResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := uc.Submit(context.Background(), validSnapshot())
		done <- outcome{res, err}
	}()

	// Wait until the first submission's checks are genuinely in flight.
	<-store.started
	<-store.started

	_, err := uc.Submit(context.Background(), validSnapshot())
	assert.ErrorIs(t, err, xerrors.ErrSubmissionInFlight, "double-tap must be rejected, not queued")

	close(store.block)
	first := <-done
	require.NoError(t, first.err)
	assert.Equal(t, domain.SubmissionSucceeded, first.res.State)
	assert.Equal(t, 1, id.callCount(), "exactly one provisioning attempt")
}

func TestSubmitCredentialFailureStopsBeforeProfileWrite(t *testing.T) {
	store := newFakeStore()
	id := &fakeIdentity{err: errors.New("email-already-in-use")}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	res, err := uc.Submit(context.Background(), validSnapshot())
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionFailed, res.State)
	assert.Empty(t, res.FieldErrors)
	assert.Zero(t, store.writeCount(), "no profile write after credential failure")
	assert.Equal(t, []string{domain.MsgAccountCreateFail}, rec.allNotices())
	assert.Empty(t, rec.allRoutes())
}

func TestSubmitProfileWriteFailureReportsGenerically(t *testing.T) {
	store := newFakeStore()
	store.writeErr = errors.New("deadline exceeded")
	id := &fakeIdentity{id: "cred-1"}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	res, err := uc.Submit(context.Background(), validSnapshot())
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionFailed, res.State)
	assert.Equal(t, domain.SubmissionFailed, uc.State())
	assert.Equal(t, 1, id.callCount(), "credential was created; the orphan is reported, not rolled back")
	assert.Equal(t, []string{domain.MsgAccountCreateFail}, rec.allNotices())
	assert.Empty(t, rec.allRoutes(), "no success navigation after a partial commit")
}

func TestSubmitReinvocableAfterFailure(t *testing.T) {
	store := newFakeStore()
	store.take(domain.FieldUsername, "ann1")
	id := &fakeIdentity{id: "cred-1"}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	res, err := uc.Submit(context.Background(), validSnapshot())
	require.NoError(t, err)
	require.Equal(t, domain.SubmissionFailed, res.State)

	// The user fixes the conflict and resubmits on the same orchestrator.
	snap := validSnapshot()
	snap.Username = "ann2"
	res, err = uc.Submit(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionSucceeded, res.State)
}

func TestSubmitUncheckableValuesFailClosed(t *testing.T) {
	store := newFakeStore()
	store.queryErr = errors.New("store unreachable")
	uc := NewRegisterUsecase(&fakeIdentity{id: "x"}, store, &signalRecorder{}, &signalRecorder{})

	res, err := uc.Submit(context.Background(), validSnapshot())
	require.NoError(t, err)

	assert.Equal(t, domain.SubmissionFailed, res.State)
	assert.Equal(t, map[string]string{
		domain.FieldEmail: domain.MsgEmailRegistered,
	}, res.FieldErrors, "unverifiable values read as conflicts, email first")
}

// Sanity check that nothing leaks between attempts via shared state.
func TestSubmitSequentialAttemptsIndependent(t *testing.T) {
	store := newFakeStore()
	id := &fakeIdentity{id: "cred-1"}
	rec := &signalRecorder{}
	uc := NewRegisterUsecase(id, store, rec, rec)

	for i := 0; i < 3; i++ {
		snap := validSnapshot()
		res, err := uc.Submit(context.Background(), snap)
		require.NoError(t, err)
		require.Equal(t, domain.SubmissionSucceeded, res.State)
	}
	assert.Equal(t, 3, id.callCount())
	assert.Len(t, rec.allRoutes(), 3)

	// States settle; no goroutines left mid-submission.
	require.Eventually(t, func() bool {
		return uc.State() == domain.SubmissionSucceeded
	}, time.Second, 10*time.Millisecond)
}
