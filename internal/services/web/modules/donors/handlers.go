package donors

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	apperrors "github.com/louisbranch/emergencyhelp/internal/services/web/platform/errors"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
	"github.com/louisbranch/emergencyhelp/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	donors storage.DonorStore
}

func (h handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	if h.donors == nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, "donor directory is not configured"))
		return
	}
	filter := parseFilter(r)
	donors, err := h.donors.ListDonors(r.Context(), filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	view := templates.DonorsView{Filter: filter, Donors: donors}
	if len(donors) == 0 && filter.Location != "" {
		view.Suggestion = h.suggestLocation(r, filter)
	}
	page := h.Page(r, i18n.SearchDonors)
	h.WritePage(w, r, page, http.StatusOK, templates.Donors(page, view))
}

// suggestLocation offers a nearby spelling when a location search found
// nobody. Lookup failures only cost the hint.
func (h handlers) suggestLocation(r *http.Request, filter storage.DonorFilter) string {
	candidates, err := h.donors.ListDonors(r.Context(), storage.DonorFilter{BloodGroup: filter.BloodGroup})
	if err != nil {
		log.Printf("donors: suggestion lookup failed: %v", err)
		return ""
	}
	location, _ := closestLocation(filter.Location, candidates)
	return location
}

// parseFilter reads the search form. An unknown blood group searches every
// group rather than failing the page.
func parseFilter(r *http.Request) storage.DonorFilter {
	query := r.URL.Query()
	filter := storage.DonorFilter{Location: strings.TrimSpace(query.Get(routepath.LocationQuery))}
	if group, err := session.ParseBloodGroup(query.Get(routepath.BloodGroupQuery)); err == nil {
		filter.BloodGroup = group
	}
	return filter
}
