package auth

import (
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

func registerLoginRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc("GET "+routepath.Login, h.handleLoginPage)
	mux.HandleFunc("POST "+routepath.Login, h.handleLogin)
}

func registerRegisterRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc("GET "+routepath.Register, h.handleRegisterPage)
	mux.HandleFunc("POST "+routepath.Register, h.handleRegister)
}

func registerLogoutRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc("POST "+routepath.Logout, h.handleLogout)
}
