package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	webauth "github.com/louisbranch/emergencyhelp/internal/services/web/auth"
	apperrors "github.com/louisbranch/emergencyhelp/internal/services/web/platform/errors"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	authenticator webauth.Authenticator
	registrar     webauth.Registrar
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	sh := h.Shell(r)
	next := r.URL.Query().Get(routepath.NextQueryKey)
	if sh.Session() != nil {
		h.Redirect(w, r, sh.ResumeAfterLogin(next), nil)
		return
	}
	h.writeLogin(w, r, http.StatusOK, templates.LoginView{Next: next})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if h.authenticator == nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, "authenticator is not configured"))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, err))
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	next := r.PostForm.Get(routepath.NextQueryKey)

	sh := h.Shell(r)
	identity, err := h.authenticator.Authenticate(r.Context(), email)
	if err != nil {
		if errors.Is(err, webauth.ErrUnknownAccount) {
			h.writeLogin(w, r, http.StatusUnauthorized, templates.LoginView{Email: email, Next: next, Error: sh.Text(i18n.LoginFailed)})
			return
		}
		h.WriteError(w, r, err)
		return
	}
	sh.SetSession(&identity)
	h.Redirect(w, r, sh.ResumeAfterLogin(next), nil)
}

func (h handlers) writeLogin(w http.ResponseWriter, r *http.Request, statusCode int, view templates.LoginView) {
	page := h.Page(r, i18n.Login)
	h.WritePage(w, r, page, statusCode, templates.Login(page, view))
}

func (h handlers) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if h.Shell(r).Session() != nil {
		h.Redirect(w, r, routepath.Profile, nil)
		return
	}
	h.writeRegister(w, r, http.StatusOK, templates.RegisterView{})
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if h.registrar == nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, "registrar is not configured"))
		return
	}
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, err))
		return
	}
	form := templates.RegisterForm{
		Name:       r.PostForm.Get("name"),
		Email:      r.PostForm.Get("email"),
		Phone:      r.PostForm.Get("phone"),
		Role:       r.PostForm.Get("role"),
		BloodGroup: r.PostForm.Get("blood_group"),
		Location:   r.PostForm.Get("location"),
	}
	sh := h.Shell(r)
	identity, err := h.registrar.Register(r.Context(), webauth.Registration{
		Name:       form.Name,
		Email:      form.Email,
		Phone:      form.Phone,
		Role:       form.Role,
		BloodGroup: form.BloodGroup,
		Location:   form.Location,
	})
	switch {
	case errors.Is(err, webauth.ErrInvalidRegistration):
		h.writeRegister(w, r, http.StatusBadRequest, templates.RegisterView{Form: form, Error: sh.Text(i18n.RegisterFailed)})
		return
	case errors.Is(err, webauth.ErrEmailTaken):
		h.writeRegister(w, r, http.StatusConflict, templates.RegisterView{Form: form, Error: sh.Text(i18n.EmailTaken)})
		return
	case err != nil:
		h.WriteError(w, r, err)
		return
	}
	sh.SetSession(&identity)
	h.Redirect(w, r, routepath.Profile, nil)
}

func (h handlers) writeRegister(w http.ResponseWriter, r *http.Request, statusCode int, view templates.RegisterView) {
	page := h.Page(r, i18n.Register)
	h.WritePage(w, r, page, statusCode, templates.Register(page, view))
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.Shell(r).Logout()
	h.Redirect(w, r, routepath.Root, nil)
}
