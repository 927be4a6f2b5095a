// Package shellcookie carries the shell identifier in a signed cookie.
//
// The cookie value is an HS256 JWT whose subject is the shell ID, so a
// visitor cannot attach to another visitor's shell by guessing IDs.
package shellcookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
)

// Name is the canonical shell cookie name.
const Name = "eh_shell"

const issuer = "emergencyhelp-web"

// MinSecretLen is the shortest accepted signing secret.
const MinSecretLen = 32

var (
	// ErrInvalid reports a malformed, forged or expired cookie value.
	ErrInvalid = errors.New("invalid shell cookie")
)

type claims struct {
	jwt.RegisteredClaims
}

// Codec signs and verifies shell cookie values.
type Codec struct {
	secret []byte
	ttl    time.Duration
	policy requestmeta.SchemePolicy
	now    func() time.Time
}

// NewCodec builds a codec. ttl <= 0 issues tokens without expiry.
func NewCodec(secret []byte, ttl time.Duration, policy requestmeta.SchemePolicy) (*Codec, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("shell cookie secret must be at least %d bytes", MinSecretLen)
	}
	return &Codec{
		secret: append([]byte(nil), secret...),
		ttl:    ttl,
		policy: policy,
		now:    time.Now,
	}, nil
}

// Sign returns the signed cookie value for shellID.
func (c *Codec) Sign(shellID string) (string, error) {
	shellID = strings.TrimSpace(shellID)
	if shellID == "" {
		return "", fmt.Errorf("shell id is required")
	}
	now := c.now().UTC()
	registered := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  shellID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if c.ttl > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{RegisteredClaims: registered})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign shell cookie: %w", err)
	}
	return signed, nil
}

// Verify returns the shell ID carried by value.
func (c *Codec) Verify(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrInvalid
	}
	var parsed claims
	_, err := jwt.ParseWithClaims(value, &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	subject := strings.TrimSpace(parsed.Subject)
	if subject == "" {
		return "", ErrInvalid
	}
	return subject, nil
}

// Read returns the verified shell ID from the request cookie.
func (c *Codec) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	shellID, err := c.Verify(cookie.Value)
	if err != nil {
		return "", false
	}
	return shellID, true
}

// Write sets the shell cookie for shellID.
func (c *Codec) Write(w http.ResponseWriter, r *http.Request, shellID string) error {
	if w == nil {
		return nil
	}
	signed, err := c.Sign(shellID)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     Name,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.policy),
		SameSite: http.SameSiteLaxMode,
	}
	if c.ttl > 0 {
		cookie.MaxAge = int(c.ttl / time.Second)
	}
	http.SetCookie(w, cookie)
	return nil
}

// Clear expires the shell cookie.
func (c *Codec) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
