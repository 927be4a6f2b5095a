// Package storage declares persistence contracts for the account directory,
// the donor listing and the SOS alert log.
//
// Sessions and display language are never persisted; they live in the
// in-memory shell registry only.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a unique key is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// Account is one registered identity.
type Account struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Role       session.Role
	BloodGroup *session.BloodGroup
	Location   *string
	Available  *bool
	CreatedAt  time.Time
}

// Session converts the account into the identity a shell holds.
func (a Account) Session() *session.Session {
	return (&session.Session{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		Role:       a.Role,
		BloodGroup: a.BloodGroup,
		Location:   a.Location,
		Available:  a.Available,
	}).Clone()
}

// Donor is one entry of the public donor listing.
type Donor struct {
	ID         string
	AccountID  string
	Name       string
	BloodGroup session.BloodGroup
	Location   string
	Phone      string
	Available  bool
}

// DonorFilter narrows the donor listing. Zero values match everything;
// Location matches case-insensitively as a substring.
type DonorFilter struct {
	BloodGroup session.BloodGroup
	Location   string
}

// SOSAlert records one SOS trigger.
type SOSAlert struct {
	ID        string
	ShellID   string
	AccountID string
	CreatedAt time.Time
}

// Stats holds the admin dashboard counters.
type Stats struct {
	Accounts int
	Donors   int
	Alerts   int
}

// AccountStore persists registered accounts.
type AccountStore interface {
	CreateAccount(ctx context.Context, account Account) error
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
}

// DonorStore lists donors.
type DonorStore interface {
	ListDonors(ctx context.Context, filter DonorFilter) ([]Donor, error)
}

// AlertStore records SOS alerts.
type AlertStore interface {
	RecordSOSAlert(ctx context.Context, alert SOSAlert) error
}

// StatsStore aggregates dashboard counters.
type StatsStore interface {
	Stats(ctx context.Context) (Stats, error)
}

// Store is the full persistence contract of the web service.
type Store interface {
	AccountStore
	DonorStore
	AlertStore
	StatsStore
	Ping(ctx context.Context) error
	Close() error
}
