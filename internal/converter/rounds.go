package converter

import (
	crashDTO "moodcasino/internal/api/dto/crash"
	dropDTO "moodcasino/internal/api/dto/drop"
	handDTO "moodcasino/internal/api/dto/hand"
	slotsDTO "moodcasino/internal/api/dto/slots"
	wheelDTO "moodcasino/internal/api/dto/wheel"
	"moodcasino/internal/model"
)

func ToSlotsRoundResponse(round model.SlotsRound, balance float64) slotsDTO.RoundResponse {
	return slotsDTO.RoundResponse{
		Phase:       string(round.Phase),
		Bet:         round.Bet,
		Board:       round.Board,
		WinRow:      round.WinRow,
		WinSymbol:   round.WinSymbol,
		TotalPayout: round.TotalPayout,
		NetWin:      round.NetWin,
		Balance:     balance,
	}
}

func ToWheelRoundResponse(round model.WheelRound, balance float64) wheelDTO.RoundResponse {
	return wheelDTO.RoundResponse{
		Phase:         string(round.Phase),
		Bet:           round.Bet,
		AddedRotation: round.AddedRotation,
		TotalRotation: round.TotalRotation,
		SegmentIndex:  round.SegmentIndex,
		Multiplier:    round.Multiplier,
		TotalPayout:   round.TotalPayout,
		NetWin:        round.NetWin,
		Balance:       balance,
	}
}

func ToCrashRoundResponse(round model.CrashRound, balance float64) crashDTO.RoundResponse {
	return crashDTO.RoundResponse{
		Phase:       string(round.Phase),
		Bet:         round.Bet,
		Multiplier:  round.Multiplier,
		CashedOut:   round.CashedOut,
		Crashed:     round.Crashed,
		TotalPayout: round.TotalPayout,
		NetWin:      round.NetWin,
		Balance:     balance,
	}
}

func ToDropRoundResponse(round model.DropRound, balance float64) dropDTO.RoundResponse {
	return dropDTO.RoundResponse{
		Phase:       string(round.Phase),
		Bet:         round.Bet,
		Path:        round.Path,
		FinalColumn: round.FinalColumn,
		SlotIndex:   round.SlotIndex,
		Multiplier:  round.Multiplier,
		TotalPayout: round.TotalPayout,
		NetWin:      round.NetWin,
		Balance:     balance,
	}
}

func ToHandRoundResponse(round model.HandRound, balance float64) handDTO.RoundResponse {
	return handDTO.RoundResponse{
		Phase:       string(round.Phase),
		Bet:         round.Bet,
		Digits:      round.Digits,
		Rank:        string(round.Rank),
		Multiplier:  round.Multiplier,
		TotalPayout: round.TotalPayout,
		NetWin:      round.NetWin,
		Balance:     balance,
	}
}
