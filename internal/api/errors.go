package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"lucky_casino/internal/model"
	"lucky_casino/pkg/resp"
)

// statuses доменные ошибки и их HTTP статусы
var statuses = []struct {
	err    error
	status int
}{
	{model.ErrInvalidInput, http.StatusBadRequest},
	{model.ErrInvalidBet, http.StatusBadRequest},
	{model.ErrInvalidAmount, http.StatusBadRequest},
	{model.ErrInvalidCredentials, http.StatusUnauthorized},
	{model.ErrInvalidToken, http.StatusUnauthorized},
	{model.ErrInsufficientBalance, http.StatusPaymentRequired},
	{model.ErrUserNotFound, http.StatusNotFound},
	{model.ErrEmailTaken, http.StatusConflict},
	{model.ErrSpinInProgress, http.StatusConflict},
	{model.ErrBonusActive, http.StatusConflict},
}

// StatusOf HTTP статус для ошибки сервиса
func StatusOf(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// WriteError отвечает статусом по ошибке. Внутренние ошибки логируются
// и клиенту не раскрываются
func WriteError(w http.ResponseWriter, log *zap.Logger, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}

// BadRequest ошибка разбора тела запроса
func BadRequest(w http.ResponseWriter, err error) {
	resp.WriteError(w, http.StatusBadRequest, err.Error())
}
