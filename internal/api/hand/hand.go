package hand

import (
	"net/http"

	dto "moodcasino/internal/api/dto/hand"
	"moodcasino/internal/converter"
	"moodcasino/internal/service"
	"moodcasino/pkg/req"
	"moodcasino/pkg/resp"
)

type HandlerDeps struct {
	Serv    service.HandService
	Economy service.EconomyService
}

type Handler struct {
	serv    service.HandService
	economy service.EconomyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, economy: deps.Economy}
}

func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DealRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	round, err := h.serv.Deal(r.Context(), payload.Bet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToHandRoundResponse(*round, h.economy.Snapshot().Balance))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToHandRoundResponse(h.serv.Round(), h.economy.Snapshot().Balance))
}
