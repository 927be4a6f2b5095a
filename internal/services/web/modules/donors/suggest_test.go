package donors

import (
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

func TestClosestLocation(t *testing.T) {
	t.Parallel()

	donors := []storage.Donor{
		{Location: "Dhaka"},
		{Location: "Chittagong"},
		{Location: "Sylhet"},
		{Location: ""},
	}
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{query: "dahka", want: "Dhaka", ok: true},
		{query: "Chitagong", want: "Chittagong", ok: true},
		{query: "silhet", want: "Sylhet", ok: true},
		{query: "Rajshahi", ok: false},
		{query: "  ", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			t.Parallel()

			got, ok := closestLocation(tc.query, donors)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("closestLocation(%q) = %q, %v; want %q, %v", tc.query, got, ok, tc.want, tc.ok)
			}
		})
	}
}
