package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-service/internal/domain"
	"chat-service/pkg/xerrors"
)

type fakeVerifier struct {
	id  string
	err error
}

func (f *fakeVerifier) VerifyCredential(ctx context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.id, nil
}

type fakeProfiles struct {
	user *domain.User
	err  error
}

func (f *fakeProfiles) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeSigner struct{ err error }

func (f *fakeSigner) Sign(userID, username string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "tok-" + userID, nil
}

type fakeSessions struct {
	saved map[string]string
	err   error
}

func (f *fakeSessions) Save(ctx context.Context, userID, token string) error {
	if f.err != nil {
		return f.err
	}
	if f.saved == nil {
		f.saved = make(map[string]string)
	}
	f.saved[userID] = token
	return nil
}

func TestLoginHappyPath(t *testing.T) {
	user := &domain.User{ID: "u1", Name: "Ann", Username: "ann1", Email: "ann@x.com", CreatedAt: time.Now()}
	sessions := &fakeSessions{}
	uc := NewLoginUsecase(&fakeVerifier{id: "u1"}, &fakeProfiles{user: user}, &fakeSigner{}, sessions)

	res, err := uc.Login(context.Background(), "ann@x.com", "p@ss1234")
	require.NoError(t, err)

	assert.Equal(t, "Chat", res.Route)
	assert.Equal(t, "tok-u1", res.Token)
	assert.Equal(t, user, res.User)
	assert.Equal(t, "tok-u1", sessions.saved["u1"])
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	uc := NewLoginUsecase(&fakeVerifier{}, &fakeProfiles{}, &fakeSigner{}, &fakeSessions{})

	_, err := uc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, xerrors.ErrEmailRequired)

	_, err = uc.Login(context.Background(), "ann@x.com", "")
	assert.ErrorIs(t, err, xerrors.ErrPasswordRequired)
}

func TestLoginBadCredential(t *testing.T) {
	uc := NewLoginUsecase(&fakeVerifier{err: xerrors.ErrInvalidCredentials}, &fakeProfiles{}, &fakeSigner{}, &fakeSessions{})

	_, err := uc.Login(context.Background(), "ann@x.com", "wrong")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginOrphanedCredentialCannotLogIn(t *testing.T) {
	// Credential exists but the second provisioning phase never wrote a
	// profile; the login must fail the same way a bad password does.
	uc := NewLoginUsecase(&fakeVerifier{id: "cred-7"}, &fakeProfiles{err: xerrors.ErrUserNotFound}, &fakeSigner{}, &fakeSessions{})

	_, err := uc.Login(context.Background(), "ann@x.com", "p@ss1234")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}
