// Package sos accepts SOS triggers from the floating help button.
package sos

import (
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/platform/id"
	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/navigation"
	apperrors "github.com/louisbranch/emergencyhelp/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/emergencyhelp/internal/services/web/platform/flash"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// Notifier forwards a recorded alert to responders without blocking.
type Notifier interface {
	Notify(alert storage.SOSAlert) bool
}

// Module provides the SOS endpoint.
type Module struct {
	alerts   storage.AlertStore
	notifier Notifier
	policy   requestmeta.SchemePolicy
	now      func() time.Time
}

// New returns the SOS module. A nil alert store still drives the indicator;
// a nil notifier keeps alerts local.
func New(alerts storage.AlertStore, notifier Notifier, policy requestmeta.SchemePolicy) Module {
	return Module{alerts: alerts, notifier: notifier, policy: policy, now: time.Now}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "sos"
}

// Mount wires the SOS route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{Base: modulehandler.NewBase(m.policy), alerts: m.alerts, notifier: m.notifier, now: m.now}
	mux.HandleFunc("POST "+routepath.SOS, h.handleTrigger)
	return module.Mount{Prefix: routepath.SOS, Handler: mux}, nil
}

type handlers struct {
	modulehandler.Base
	alerts   storage.AlertStore
	notifier Notifier
	now      func() time.Time
}

// handleTrigger lights the indicator, records the alert and hands it to the
// notifier. The visitor is always told help is on the way; a failed write is
// only logged.
func (h handlers) handleTrigger(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, err))
		return
	}
	sh := h.Shell(r)
	sh.SOS().Trigger()

	alert := storage.SOSAlert{ShellID: sh.ID(), CreatedAt: h.now().UTC()}
	if current := sh.Session(); current != nil {
		alert.AccountID = current.ID
	}
	alertID, err := id.NewID()
	if err != nil {
		log.Printf("sos: alert id shell=%s: %v", sh.ID(), err)
	}
	alert.ID = alertID
	if h.alerts != nil && alert.ID != "" {
		if err := h.alerts.RecordSOSAlert(r.Context(), alert); err != nil {
			log.Printf("sos: record alert shell=%s: %v", sh.ID(), err)
		}
	}
	if h.notifier != nil && alert.ID != "" {
		h.notifier.Notify(alert)
	}

	notice := flashnotice.NoticeSuccess(i18n.SOSSent)
	h.Redirect(w, r, navigation.SafeNext(r.PostFormValue(routepath.NextQueryKey), routepath.Root), &notice)
}
