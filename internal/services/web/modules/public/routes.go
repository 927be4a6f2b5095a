package public

import (
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc("GET /{$}", h.handleHome)
	mux.HandleFunc("GET "+routepath.FirstAid, h.handleFirstAid)
	mux.HandleFunc("GET "+routepath.ServicePattern, h.handleService)
	mux.HandleFunc("/", h.handleNotFound)
}
