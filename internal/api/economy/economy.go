package economy

import (
	"net/http"
	"time"

	dto "moodcasino/internal/api/dto/economy"
	"moodcasino/internal/converter"
	"moodcasino/internal/service"
	"moodcasino/pkg/req"
	"moodcasino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.EconomyService
}

type Handler struct {
	serv service.EconomyService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEconomyStateResponse(h.serv.Snapshot()))
}

func (h *Handler) DailyBonus(w http.ResponseWriter, r *http.Request) {
	granted, err := h.serv.GrantDailyBonus(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DailyBonusResponse{
		Granted: granted,
		Balance: h.serv.Snapshot().Balance,
	})
}

func (h *Handler) RerollMood(w http.ResponseWriter, r *http.Request) {
	mood, err := h.serv.RerollMood(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.RerollResponse{
		Mood:       string(mood),
		Multiplier: mood.Multiplier(),
	})
}

func (h *Handler) ActivateBoost(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BoostRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Seconds <= 0 {
		http.Error(w, "seconds must be positive", http.StatusBadRequest)
		return
	}

	err = h.serv.ActivateMoodBoost(r.Context(), time.Duration(payload.Seconds)*time.Second)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEconomyStateResponse(h.serv.Snapshot()))
}
