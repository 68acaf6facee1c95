package user

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"lucky_casino/internal/api"
	dto "lucky_casino/internal/api/dto/user"
	"lucky_casino/internal/converter"
	"lucky_casino/internal/middleware"
	"lucky_casino/internal/model"
	"lucky_casino/internal/service"
	"lucky_casino/pkg/req"
	"lucky_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.UserService
	Log  *zap.Logger
}

type Handler struct {
	serv service.UserService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	u, err := h.serv.Profile(r.Context(), userID)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(*u))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	balance, err := h.serv.Deposit(r.Context(), userID, payload.Amount)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	if err := h.serv.Deactivate(r.Context(), userID); err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TopPlayers ?limit=N, по умолчанию 10
func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = n
	}

	players, err := h.serv.TopPlayers(r.Context(), limit)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboard(players))
}
