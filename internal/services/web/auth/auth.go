// Package auth resolves a login request to an identity.
//
// Credential verification is owned by an external identity provider; the
// Directory implementation trusts the submitted email and is meant for
// development and demos.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/platform/id"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

var (
	// ErrUnknownAccount means no account matches the login.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrInvalidRegistration means required registration fields are missing.
	ErrInvalidRegistration = errors.New("invalid registration")
	// ErrEmailTaken means the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// Authenticator turns a login into a session.
type Authenticator interface {
	Authenticate(ctx context.Context, email string) (session.Session, error)
}

// Registrar creates accounts and returns the session for the new identity.
type Registrar interface {
	Register(ctx context.Context, reg Registration) (session.Session, error)
}

// Registration is the sign-up form.
type Registration struct {
	Name       string
	Email      string
	Phone      string
	Role       string
	BloodGroup string
	Location   string
}

// Directory authenticates against the stored account directory.
type Directory struct {
	accounts storage.AccountStore
	newID    func() (string, error)
}

// NewDirectory builds a Directory over accounts.
func NewDirectory(accounts storage.AccountStore) *Directory {
	return &Directory{accounts: accounts, newID: id.NewID}
}

// Authenticate looks the email up in the directory.
func (d *Directory) Authenticate(ctx context.Context, email string) (session.Session, error) {
	if d == nil || d.accounts == nil {
		return session.Session{}, fmt.Errorf("account directory is not configured")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return session.Session{}, ErrUnknownAccount
	}
	account, err := d.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return session.Session{}, ErrUnknownAccount
		}
		return session.Session{}, fmt.Errorf("authenticate: %w", err)
	}
	return *account.Session(), nil
}

// Register validates reg, stores the account and returns its session.
func (d *Directory) Register(ctx context.Context, reg Registration) (session.Session, error) {
	if d == nil || d.accounts == nil {
		return session.Session{}, fmt.Errorf("account directory is not configured")
	}
	account, err := reg.account()
	if err != nil {
		return session.Session{}, err
	}
	accountID, err := d.newID()
	if err != nil {
		return session.Session{}, fmt.Errorf("register: %w", err)
	}
	account.ID = accountID
	if err := d.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return session.Session{}, ErrEmailTaken
		}
		return session.Session{}, fmt.Errorf("register: %w", err)
	}
	return *account.Session(), nil
}

// EnsureAdmin provisions the admin account for email unless it exists. An
// existing non-admin account with that email is an error.
func (d *Directory) EnsureAdmin(ctx context.Context, name, email string) error {
	if d == nil || d.accounts == nil {
		return fmt.Errorf("account directory is not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	existing, err := d.accounts.GetAccountByEmail(ctx, email)
	switch {
	case err == nil && existing.Role == session.RoleAdmin:
		return nil
	case err == nil:
		return fmt.Errorf("ensure admin: %s is registered as %s", email, existing.Role)
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("ensure admin: %w", err)
	}
	accountID, err := d.newID()
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Administrator"
	}
	err = d.accounts.CreateAccount(ctx, storage.Account{ID: accountID, Name: name, Email: email, Role: session.RoleAdmin})
	if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}

func (reg Registration) account() (storage.Account, error) {
	name := strings.TrimSpace(reg.Name)
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return storage.Account{}, ErrInvalidRegistration
	}
	role, err := session.ParseRole(reg.Role)
	if err != nil {
		return storage.Account{}, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}
	if role == session.RoleAdmin {
		return storage.Account{}, fmt.Errorf("%w: admin accounts are provisioned, not registered", ErrInvalidRegistration)
	}
	account := storage.Account{
		Name:  name,
		Email: email,
		Phone: strings.TrimSpace(reg.Phone),
		Role:  role,
	}
	if raw := strings.TrimSpace(reg.BloodGroup); raw != "" {
		group, err := session.ParseBloodGroup(raw)
		if err != nil {
			return storage.Account{}, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
		}
		account.BloodGroup = &group
	}
	if location := strings.TrimSpace(reg.Location); location != "" {
		account.Location = &location
	}
	if role == session.RoleDonor {
		if account.BloodGroup == nil {
			return storage.Account{}, fmt.Errorf("%w: donors need a blood group", ErrInvalidRegistration)
		}
		available := true
		account.Available = &available
	}
	return account, nil
}

var (
	_ Authenticator = (*Directory)(nil)
	_ Registrar     = (*Directory)(nil)
)
