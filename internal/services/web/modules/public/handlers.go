package public

import (
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/directory"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
	"github.com/louisbranch/emergencyhelp/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	stats storage.StatsStore
}

func newHandlers(stats storage.StatsStore, base modulehandler.Base) handlers {
	return handlers{Base: base, stats: stats}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	view := templates.HomeView{Cards: directory.Cards()}
	if h.stats != nil {
		stats, err := h.stats.Stats(r.Context())
		if err != nil {
			h.WriteError(w, r, err)
			return
		}
		view.Stats = stats
	}
	page := h.Page(r, i18n.Title)
	h.WritePage(w, r, page, http.StatusOK, templates.Home(page, view))
}

func (h handlers) handleFirstAid(w http.ResponseWriter, r *http.Request) {
	page := h.Page(r, i18n.FirstAidGuides)
	h.WritePage(w, r, page, http.StatusOK, templates.FirstAid(page, directory.Guides()))
}

func (h handlers) handleService(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("type")
	if kind == string(directory.KindFirstAid) {
		http.Redirect(w, r, routepath.FirstAid, http.StatusMovedPermanently)
		return
	}
	service, ok := directory.LookupService(kind)
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	page := h.Page(r, service.Label)
	h.WritePage(w, r, page, http.StatusOK, templates.Service(page, service))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
