package auth

import (
	"net/http"

	"go.uber.org/zap"

	"lucky_casino/internal/api"
	dto "lucky_casino/internal/api/dto/auth"
	"lucky_casino/internal/converter"
	"lucky_casino/internal/model"
	"lucky_casino/internal/service"
	"lucky_casino/pkg/req"
	"lucky_casino/pkg/resp"
)

const (
	sessionCookie = "session_id"
	refreshCookie = "refresh_token"
	// refresh_token уходит только на /auth
	refreshCookiePath = "/auth"
)

type HandlerDeps struct {
	Serv          service.AuthService
	Log           *zap.Logger
	CookieMaxAge  int
	SecureCookies bool
}

type Handler struct {
	serv   service.AuthService
	log    *zap.Logger
	maxAge int
	secure bool
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		log:    deps.Log,
		maxAge: deps.CookieMaxAge,
		secure: deps.SecureCookies,
	}
}

// Register создаёт пользователя, открывает сессию.
// access_token в теле, session_id и refresh_token в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Email, requestBody.Password)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh новый access_token по cookies session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionCookie)
	if err != nil {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}
	refreshToken, err := r.Cookie(refreshCookie)
	if err != nil {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    sessionID.Value,
		RefreshToken: refreshToken.Value,
	})
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	if err := h.serv.Logout(r.Context(), c.Value); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	h.clearCookie(w, sessionCookie, "/")
	h.clearCookie(w, refreshCookie, refreshCookiePath)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    data.SessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   h.maxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    data.RefreshToken,
		Path:     refreshCookiePath,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   h.maxAge,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
