// Package sqlite provides the SQLite implementation of web storage.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/emergencyhelp/internal/platform/id"
	"github.com/louisbranch/emergencyhelp/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	webstorage "github.com/louisbranch/emergencyhelp/internal/services/web/storage"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store provides SQLite-backed persistence for the web service.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a web SQLite store. The special path ":memory:"
// opens a private in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if dsn == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, now: time.Now}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping reports whether the database answers.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

// CreateAccount inserts an account. Donor accounts with a blood group are
// also added to the donor listing in the same transaction.
func (s *Store) CreateAccount(ctx context.Context, account webstorage.Account) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	account.ID = strings.TrimSpace(account.ID)
	if account.ID == "" {
		return fmt.Errorf("account id is required")
	}
	account.Name = strings.TrimSpace(account.Name)
	if account.Name == "" {
		return fmt.Errorf("account name is required")
	}
	account.Email = normalizeEmail(account.Email)
	if account.Email == "" {
		return fmt.Errorf("account email is required")
	}
	if !account.Role.Valid() {
		return fmt.Errorf("account role %q is invalid", account.Role)
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = s.now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create account: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO accounts (id, name, email, phone, role, blood_group, location, available, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		account.ID,
		account.Name,
		account.Email,
		strings.TrimSpace(account.Phone),
		string(account.Role),
		nullableBloodGroup(account.BloodGroup),
		nullableString(account.Location),
		nullableBool(account.Available),
		account.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return webstorage.ErrAlreadyExists
		}
		return fmt.Errorf("create account: %w", err)
	}

	if account.Role == session.RoleDonor && account.BloodGroup != nil {
		location := ""
		if account.Location != nil {
			location = strings.TrimSpace(*account.Location)
		}
		available := account.Available == nil || *account.Available
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO donors (id, account_id, name, blood_group, location, phone, available)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			account.ID,
			account.ID,
			account.Name,
			string(*account.BloodGroup),
			location,
			strings.TrimSpace(account.Phone),
			boolToInt(available),
		); err != nil {
			return fmt.Errorf("list donor account: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create account: %w", err)
	}
	return nil
}

// GetAccountByEmail loads an account by its (case-insensitive) email.
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (webstorage.Account, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Account{}, fmt.Errorf("storage is not configured")
	}
	email = normalizeEmail(email)
	if email == "" {
		return webstorage.Account{}, fmt.Errorf("email is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, phone, role, blood_group, location, available, created_at
		 FROM accounts
		 WHERE email = ?`,
		email,
	)

	var (
		account    webstorage.Account
		role       string
		bloodGroup sql.NullString
		location   sql.NullString
		available  sql.NullInt64
		createdAt  int64
	)
	if err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Phone,
		&role,
		&bloodGroup,
		&location,
		&available,
		&createdAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.Account{}, webstorage.ErrNotFound
		}
		return webstorage.Account{}, fmt.Errorf("get account: %w", err)
	}

	parsedRole, err := session.ParseRole(role)
	if err != nil {
		return webstorage.Account{}, fmt.Errorf("get account: %w", err)
	}
	account.Role = parsedRole
	if bloodGroup.Valid {
		group, err := session.ParseBloodGroup(bloodGroup.String)
		if err != nil {
			return webstorage.Account{}, fmt.Errorf("get account: %w", err)
		}
		account.BloodGroup = &group
	}
	if location.Valid {
		value := location.String
		account.Location = &value
	}
	if available.Valid {
		value := available.Int64 != 0
		account.Available = &value
	}
	account.CreatedAt = time.UnixMilli(createdAt).UTC()
	return account, nil
}

// ListDonors returns donors matching filter ordered by name.
func (s *Store) ListDonors(ctx context.Context, filter webstorage.DonorFilter) ([]webstorage.Donor, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := `SELECT id, COALESCE(account_id, ''), name, blood_group, location, phone, available FROM donors`
	var (
		clauses []string
		args    []any
	)
	if filter.BloodGroup != "" {
		clauses = append(clauses, "blood_group = ?")
		args = append(args, string(filter.BloodGroup))
	}
	if location := strings.TrimSpace(filter.Location); location != "" {
		clauses = append(clauses, "instr(lower(location), lower(?)) > 0")
		args = append(args, location)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY name, id"

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer rows.Close()

	donors := make([]webstorage.Donor, 0)
	for rows.Next() {
		var (
			donor     webstorage.Donor
			group     string
			available int64
		)
		if err := rows.Scan(&donor.ID, &donor.AccountID, &donor.Name, &group, &donor.Location, &donor.Phone, &available); err != nil {
			return nil, fmt.Errorf("scan donor: %w", err)
		}
		donor.BloodGroup = session.BloodGroup(group)
		donor.Available = available != 0
		donors = append(donors, donor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return donors, nil
}

// RecordSOSAlert appends an alert; a blank ID is generated.
func (s *Store) RecordSOSAlert(ctx context.Context, alert webstorage.SOSAlert) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	alert.ShellID = strings.TrimSpace(alert.ShellID)
	if alert.ShellID == "" {
		return fmt.Errorf("shell id is required")
	}
	if strings.TrimSpace(alert.ID) == "" {
		generated, err := id.NewID()
		if err != nil {
			return fmt.Errorf("record sos alert: %w", err)
		}
		alert.ID = generated
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = s.now().UTC()
	}
	if _, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sos_alerts (id, shell_id, account_id, created_at) VALUES (?, ?, ?, ?)`,
		alert.ID,
		alert.ShellID,
		strings.TrimSpace(alert.AccountID),
		alert.CreatedAt.UnixMilli(),
	); err != nil {
		if isUniqueViolation(err) {
			return webstorage.ErrAlreadyExists
		}
		return fmt.Errorf("record sos alert: %w", err)
	}
	return nil
}

// Stats counts accounts, listed donors and recorded alerts.
func (s *Store) Stats(ctx context.Context) (webstorage.Stats, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Stats{}, fmt.Errorf("storage is not configured")
	}
	var stats webstorage.Stats
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT
		    (SELECT COUNT(*) FROM accounts),
		    (SELECT COUNT(*) FROM donors),
		    (SELECT COUNT(*) FROM sos_alerts)`,
	).Scan(&stats.Accounts, &stats.Donors, &stats.Alerts)
	if err != nil {
		return webstorage.Stats{}, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func nullableBloodGroup(group *session.BloodGroup) any {
	if group == nil {
		return nil
	}
	return string(*group)
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return strings.TrimSpace(*value)
}

func nullableBool(value *bool) any {
	if value == nil {
		return nil
	}
	return boolToInt(*value)
}

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

var _ webstorage.Store = (*Store)(nil)
