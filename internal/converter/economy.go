package converter

import (
	"time"

	dto "moodcasino/internal/api/dto/economy"
	"moodcasino/internal/model"
)

func ToEconomyStateResponse(snap model.EconomySnapshot) dto.StateResponse {
	resp := dto.StateResponse{
		Balance:        snap.Balance,
		CurrentMood:    string(snap.CurrentMood),
		EffectiveMood:  string(snap.EffectiveMood),
		MoodMultiplier: snap.EffectiveMood.Multiplier(),
		BoostActive:    snap.BoostActive(time.Now()),
		SessionWins:    snap.SessionWins,
	}
	if snap.BoostUntil != nil {
		secs := snap.BoostUntil.Unix()
		resp.BoostUntil = &secs
	}
	if snap.LastDailyBonus != nil {
		secs := snap.LastDailyBonus.Unix()
		resp.LastDailyBonus = &secs
	}
	return resp
}
