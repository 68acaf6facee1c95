package stats

import (
	"net/http"

	"lucky_casino/internal/converter"
	"lucky_casino/internal/service"
	"lucky_casino/pkg/resp"
)

type Handler struct {
	serv service.StatsService
}

func NewHandler(serv service.StatsService) *Handler {
	return &Handler{serv: serv}
}

// Snapshot RTP по играм с момента запуска
func (h *Handler) Snapshot(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameStatsResponse(h.serv.Snapshot()))
}
