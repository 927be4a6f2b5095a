// Package routeguard decides whether a screen may render for the current
// session.
//
// Evaluate is a pure function of (session, policy, path): it performs no I/O,
// never fails and returns the same decision for the same inputs.
package routeguard

import (
	"fmt"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
)

// Policy is the access rule attached to one route pattern.
type Policy struct {
	Pattern      string
	RequiresAuth bool
	// Roles restricts access to the listed roles. Empty means unrestricted.
	Roles []session.Role
}

// Restricted reports whether the policy limits access by role.
func (p Policy) Restricted() bool {
	return len(p.Roles) > 0
}

func (p Policy) permits(role session.Role) bool {
	for _, allowed := range p.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Kind classifies a guard decision.
type Kind uint8

const (
	// Allow renders the requested screen.
	Allow Kind = iota
	// RedirectToLogin sends an anonymous visitor to the login screen.
	RedirectToLogin
	// RedirectToDefault sends a visitor lacking the required role home.
	RedirectToDefault
)

func (k Kind) String() string {
	switch k {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToDefault:
		return "redirect_to_default"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Decision is the guard outcome for one navigation.
type Decision struct {
	Kind Kind
	// Path is the originally requested path; set for RedirectToLogin so the
	// login flow can resume it.
	Path string
}

// Evaluate applies p to the session s for a navigation to path:
//
//  1. auth required and no session: RedirectToLogin(path)
//  2. roles restricted and no session or role not permitted: RedirectToDefault
//  3. otherwise Allow
func Evaluate(s *session.Session, p Policy, path string) Decision {
	if p.RequiresAuth && s == nil {
		return Decision{Kind: RedirectToLogin, Path: path}
	}
	if p.Restricted() && (s == nil || !p.permits(s.Role)) {
		return Decision{Kind: RedirectToDefault}
	}
	return Decision{Kind: Allow}
}

// Table is the immutable route policy table built at startup.
type Table struct {
	policies []Policy
}

// NewTable validates and freezes policies.
func NewTable(policies ...Policy) (*Table, error) {
	seen := make(map[string]struct{}, len(policies))
	frozen := make([]Policy, 0, len(policies))
	for _, policy := range policies {
		pattern := strings.TrimSpace(policy.Pattern)
		if !strings.HasPrefix(pattern, "/") {
			return nil, fmt.Errorf("route policy pattern %q must start with /", policy.Pattern)
		}
		pattern = normalize(pattern)
		if _, ok := seen[pattern]; ok {
			return nil, fmt.Errorf("duplicate route policy pattern %q", pattern)
		}
		seen[pattern] = struct{}{}
		for _, role := range policy.Roles {
			if !role.Valid() {
				return nil, fmt.Errorf("route policy %q: unknown role %q", pattern, role)
			}
		}
		frozen = append(frozen, Policy{
			Pattern:      pattern,
			RequiresAuth: policy.RequiresAuth,
			Roles:        append([]session.Role(nil), policy.Roles...),
		})
	}
	return &Table{policies: frozen}, nil
}

// DefaultTable returns the application's route policies.
func DefaultTable() *Table {
	table, err := NewTable(
		Policy{Pattern: routepath.Root},
		Policy{Pattern: routepath.Donors},
		Policy{Pattern: routepath.FirstAid},
		Policy{Pattern: routepath.ServicePattern},
		Policy{Pattern: routepath.Login},
		Policy{Pattern: routepath.Register},
		Policy{Pattern: routepath.Logout},
		Policy{Pattern: routepath.Language},
		Policy{Pattern: routepath.SOS},
		Policy{Pattern: routepath.Events},
		Policy{Pattern: routepath.Health},
		Policy{Pattern: routepath.Profile, RequiresAuth: true},
		Policy{Pattern: routepath.Admin, RequiresAuth: true, Roles: []session.Role{session.RoleAdmin}},
	)
	if err != nil {
		panic(fmt.Sprintf("routeguard: default table: %v", err))
	}
	return table
}

// Policies returns a copy of the table entries in declaration order.
func (t *Table) Policies() []Policy {
	out := make([]Policy, 0, len(t.policies))
	for _, policy := range t.policies {
		policy.Roles = append([]session.Role(nil), policy.Roles...)
		out = append(out, policy)
	}
	return out
}

// Lookup returns the policy for path. Literal patterns win over patterns
// with {param} segments. Paths with no entry report false; callers treat
// them as public so the router can answer 404.
func (t *Table) Lookup(path string) (Policy, bool) {
	path = normalize(path)
	var (
		best      Policy
		bestScore = -1
	)
	for _, policy := range t.policies {
		score, ok := match(policy.Pattern, path)
		if ok && score > bestScore {
			best, bestScore = policy, score
		}
	}
	if bestScore < 0 {
		return Policy{Pattern: path}, false
	}
	return best, true
}

// Evaluate looks up the policy for path and evaluates it for s.
func (t *Table) Evaluate(s *session.Session, path string) Decision {
	policy, _ := t.Lookup(path)
	return Evaluate(s, policy, path)
}

// match reports whether path fits pattern and scores literal segments so the
// most specific pattern wins.
func match(pattern, path string) (int, bool) {
	if pattern == path {
		return 1 << 16, true
	}
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternParts) != len(pathParts) {
		return 0, false
	}
	score := 0
	for idx, part := range patternParts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			if pathParts[idx] == "" {
				return 0, false
			}
			continue
		}
		if part != pathParts[idx] {
			return 0, false
		}
		score++
	}
	return score, true
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
