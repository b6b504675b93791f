package crash

import (
	"net/http"

	dto "moodcasino/internal/api/dto/crash"
	"moodcasino/internal/converter"
	"moodcasino/internal/service"
	"moodcasino/pkg/req"
	"moodcasino/pkg/resp"
)

type HandlerDeps struct {
	Serv    service.CrashService
	Economy service.EconomyService
}

type Handler struct {
	serv    service.CrashService
	economy service.EconomyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, economy: deps.Economy}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	round, err := h.serv.Start(r.Context(), payload.Bet)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToCrashRoundResponse(*round, h.economy.Snapshot().Balance))
}

func (h *Handler) CashOut(w http.ResponseWriter, r *http.Request) {
	round, err := h.serv.CashOut(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToCrashRoundResponse(*round, h.economy.Snapshot().Balance))
}

// Stop Обрыв раунда без расчета (уход с экрана)
func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	h.serv.Stop()
	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToCrashRoundResponse(h.serv.Round(), h.economy.Snapshot().Balance))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK,
		converter.ToCrashRoundResponse(h.serv.Round(), h.economy.Snapshot().Balance))
}
