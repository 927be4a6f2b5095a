// Package webfakes provides in-memory fakes for web service tests.
package webfakes

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// Store is an in-memory storage.Store fake. The *Err fields force failures.
type Store struct {
	mu       sync.Mutex
	Accounts map[string]storage.Account
	Donors   []storage.Donor
	Alerts   []storage.SOSAlert

	StatsErr error
	AlertErr error
	PingErr  error
}

// NewStore constructs a Store with the given donors listed.
func NewStore(donors ...storage.Donor) *Store {
	return &Store{Accounts: map[string]storage.Account{}, Donors: donors}
}

func (s *Store) CreateAccount(_ context.Context, account storage.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(account.Email))
	if _, ok := s.Accounts[email]; ok {
		return storage.ErrAlreadyExists
	}
	account.Email = email
	s.Accounts[email] = account
	if account.BloodGroup != nil {
		location := ""
		if account.Location != nil {
			location = *account.Location
		}
		s.Donors = append(s.Donors, storage.Donor{
			ID:         "donor-" + account.ID,
			AccountID:  account.ID,
			Name:       account.Name,
			BloodGroup: *account.BloodGroup,
			Location:   location,
			Phone:      account.Phone,
			Available:  account.Available != nil && *account.Available,
		})
	}
	return nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (storage.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.Accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return storage.Account{}, storage.ErrNotFound
	}
	return account, nil
}

func (s *Store) ListDonors(_ context.Context, filter storage.DonorFilter) ([]storage.Donor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	location := strings.ToLower(strings.TrimSpace(filter.Location))
	out := []storage.Donor{}
	for _, donor := range s.Donors {
		if filter.BloodGroup != "" && donor.BloodGroup != filter.BloodGroup {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(donor.Location), location) {
			continue
		}
		out = append(out, donor)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) RecordSOSAlert(_ context.Context, alert storage.SOSAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.AlertErr != nil {
		return s.AlertErr
	}
	s.Alerts = append(s.Alerts, alert)
	return nil
}

func (s *Store) Stats(context.Context) (storage.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.StatsErr != nil {
		return storage.Stats{}, s.StatsErr
	}
	return storage.Stats{Accounts: len(s.Accounts), Donors: len(s.Donors), Alerts: len(s.Alerts)}, nil
}

func (s *Store) Ping(context.Context) error {
	return s.PingErr
}

func (s *Store) Close() error {
	return nil
}

// AlertCount reports the recorded SOS alerts.
func (s *Store) AlertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Alerts)
}

var _ storage.Store = (*Store)(nil)
