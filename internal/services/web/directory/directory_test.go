package directory

import (
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/platform/icons"
)

func TestCardsLinkToKnownRoutes(t *testing.T) {
	t.Parallel()

	cards := Cards()
	if len(cards) != 4 {
		t.Fatalf("cards = %d, want 4", len(cards))
	}
	want := []string{"/donors", "/services/ambulance", "/services/oxygen", "/first-aid"}
	for idx, card := range cards {
		if card.Path != want[idx] {
			t.Fatalf("card[%d].Path = %q, want %q", idx, card.Path, want[idx])
		}
		if _, ok := icons.LucideName(card.Icon); !ok {
			t.Fatalf("card[%d].Icon = %q has no glyph", idx, card.Icon)
		}
	}
}

func TestLookupService(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"ambulance", "oxygen", "plasma", "blood"} {
		service, ok := LookupService(kind)
		if !ok || len(service.Providers) == 0 {
			t.Fatalf("LookupService(%q) = %+v, %v", kind, service, ok)
		}
	}
	if _, ok := LookupService("taxi"); ok {
		t.Fatal("LookupService(taxi) = ok")
	}

	service, _ := LookupService("ambulance")
	service.Providers[0].Name = "changed"
	again, _ := LookupService("ambulance")
	if again.Providers[0].Name == "changed" {
		t.Fatal("LookupService exposes shared provider slice")
	}
}

func TestGuides(t *testing.T) {
	t.Parallel()

	guides := Guides()
	if len(guides) != 2 || guides[0].ID != "burns" || guides[1].ID != "cpr" {
		t.Fatalf("guides = %+v", guides)
	}
	for _, guide := range guides {
		if len(guide.Steps) != 3 {
			t.Fatalf("guide %s steps = %d", guide.ID, len(guide.Steps))
		}
	}
}
