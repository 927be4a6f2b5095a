package weberror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	apperrors "github.com/louisbranch/emergencyhelp/internal/services/web/platform/errors"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routeguard"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	bn := i18n.NewLocale(i18n.Bangla, nil)
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "keyed", err: apperrors.EK(apperrors.KindConflict, i18n.EmailTaken, "duplicate"), want: bn.Text(i18n.EmailTaken)},
		{name: "storage not found", err: fmt.Errorf("load: %w", storage.ErrNotFound), want: "Not Found"},
		{name: "internal detail hidden", err: errors.New("disk on fire"), want: "Internal Server Error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PublicMessage(bn, tc.err); got != tc.want {
				t.Fatalf("PublicMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteModuleErrorRendersMappedStatus(t *testing.T) {
	t.Parallel()

	sh := shell.New("shell-1", shell.Config{Routes: routeguard.DefaultTable()})
	defer sh.Close()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(shell.WithShell(req.Context(), sh))
	rr := httptest.NewRecorder()

	WriteModuleError(rr, req, apperrors.E(apperrors.KindUnavailable, "stats offline"), requestmeta.SchemePolicy{})
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if strings.Contains(rr.Body.String(), "stats offline") {
		t.Fatalf("internal message leaked: %s", rr.Body.String())
	}
}
