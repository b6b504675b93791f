package wheel

import (
	"net/http"

	dto "moodcasino/internal/api/dto/wheel"
	"moodcasino/internal/converter"
	"moodcasino/internal/service"
	"moodcasino/pkg/req"
	"moodcasino/pkg/resp"
)

type HandlerDeps struct {
	Serv    service.WheelService
	Economy service.EconomyService
}

type Handler struct {
	serv    service.WheelService
	economy service.EconomyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, economy: deps.Economy}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	round, err := h.serv.Spin(r.Context(), payload.Bet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToWheelRoundResponse(*round, h.economy.Snapshot().Balance))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToWheelRoundResponse(h.serv.Round(), h.economy.Snapshot().Balance))
}
