package donors

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
	"github.com/louisbranch/emergencyhelp/internal/testkit/webfakes"
)

func seededStore() *webfakes.Store {
	return webfakes.NewStore(
		storage.Donor{ID: "seed-1", Name: "Rahim Ahmed", BloodGroup: session.APositive, Location: "Dhaka", Phone: "01700000001", Available: true},
		storage.Donor{ID: "seed-2", Name: "Karim Ullah", BloodGroup: session.ONegative, Location: "Chittagong", Phone: "01800000002"},
		storage.Donor{ID: "seed-4", Name: "Tanvir Islam", BloodGroup: session.ABPositive, Location: "Dhaka", Phone: "01600000004", Available: true},
	)
}

func TestSearchFilters(t *testing.T) {
	t.Parallel()

	m, err := New(seededStore(), requestmeta.SchemePolicy{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	tests := []struct {
		name    string
		target  string
		want    []string
		exclude []string
	}{
		{name: "all", target: routepath.Donors, want: []string{"Rahim Ahmed", "Karim Ullah", "Tanvir Islam"}},
		{name: "by group", target: routepath.DonorSearch("o-", ""), want: []string{"Karim Ullah"}, exclude: []string{"Rahim Ahmed"}},
		{name: "by location", target: routepath.DonorSearch("", "dhaka"), want: []string{"Rahim Ahmed", "Tanvir Islam"}, exclude: []string{"Karim Ullah"}},
		{name: "both", target: routepath.DonorSearch("AB+", "Dha"), want: []string{"Tanvir Islam"}, exclude: []string{"Rahim Ahmed"}},
		{name: "unknown group ignored", target: routepath.DonorSearch("Z+", ""), want: []string{"Karim Ullah", "Rahim Ahmed"}},
		{name: "no match", target: routepath.DonorSearch("B-", ""), want: []string{"No donors match your search."}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := webfakes.Serve(m.Handler, webfakes.NewShell(t), httptest.NewRequest(http.MethodGet, tc.target, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d", rr.Code)
			}
			body := rr.Body.String()
			for _, marker := range tc.want {
				if !strings.Contains(body, marker) {
					t.Fatalf("body missing %q", marker)
				}
			}
			for _, marker := range tc.exclude {
				if strings.Contains(body, marker) {
					t.Fatalf("body unexpectedly contains %q", marker)
				}
			}
		})
	}
}

func TestSearchRejectsOtherMethods(t *testing.T) {
	t.Parallel()

	m, _ := New(seededStore(), requestmeta.SchemePolicy{}).Mount()
	rr := webfakes.Serve(m.Handler, webfakes.NewShell(t), httptest.NewRequest(http.MethodPost, routepath.Donors, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestSearchWithoutStoreIsUnavailable(t *testing.T) {
	t.Parallel()

	m, _ := New(nil, requestmeta.SchemePolicy{}).Mount()
	rr := webfakes.Serve(m.Handler, webfakes.NewShell(t), httptest.NewRequest(http.MethodGet, routepath.Donors, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestSearchSuggestsNearbyLocationWhenEmpty(t *testing.T) {
	t.Parallel()

	m, _ := New(seededStore(), requestmeta.SchemePolicy{}).Mount()
	tests := []struct {
		name   string
		target string
		want   string
		absent bool
	}{
		{name: "misspelled", target: routepath.DonorSearch("", "dahka"), want: `href="/donors?location=Dhaka"`},
		{name: "keeps group", target: routepath.DonorSearch("O-", "Chitagong"), want: `href="/donors?blood_group=O-&amp;location=Chittagong"`},
		{name: "group narrows candidates", target: routepath.DonorSearch("O-", "dahka"), want: `class="suggestion"`, absent: true},
		{name: "unrelated place", target: routepath.DonorSearch("", "Rajshahi"), want: `class="suggestion"`, absent: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := webfakes.Serve(m.Handler, webfakes.NewShell(t), httptest.NewRequest(http.MethodGet, tc.target, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d", rr.Code)
			}
			body := rr.Body.String()
			if got := strings.Contains(body, tc.want); got == tc.absent {
				t.Fatalf("contains %q = %v: %s", tc.want, got, body)
			}
		})
	}
}
