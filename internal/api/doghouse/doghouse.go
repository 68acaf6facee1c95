package doghouse

import (
	"net/http"

	"go.uber.org/zap"

	"lucky_casino/internal/api"
	dto "lucky_casino/internal/api/dto/doghouse"
	"lucky_casino/internal/converter"
	"lucky_casino/internal/middleware"
	"lucky_casino/internal/model"
	"lucky_casino/internal/service"
	"lucky_casino/pkg/req"
	"lucky_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.DogHouseService
	Log  *zap.Logger
}

type Handler struct {
	serv service.DogHouseService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToDogHouseSpin(userID, payload))
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDogHouseSpinResponse(*result))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	state, err := h.serv.State(r.Context(), userID)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDogHouseStateResponse(*state))
}

func (h *Handler) SetBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		api.BadRequest(w, err)
		return
	}

	state, err := h.serv.SetBet(r.Context(), model.DogHouseSpin{UserID: userID, Bet: payload.Bet})
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDogHouseStateResponse(*state))
}

// EndBonus досрочный выход из бонуса
func (h *Handler) EndBonus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, h.log, model.ErrInvalidToken)
		return
	}

	state, err := h.serv.EndBonus(r.Context(), userID)
	if err != nil {
		api.WriteError(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDogHouseStateResponse(*state))
}
