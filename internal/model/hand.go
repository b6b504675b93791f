package model

import "time"

// HandRank Ранг комбинации из пяти цифр
type HandRank string

const (
	HandFiveOfAKind  HandRank = "five_of_a_kind"
	HandFourOfAKind  HandRank = "four_of_a_kind"
	HandFullHouse    HandRank = "full_house"
	HandStraight     HandRank = "straight"
	HandThreeOfAKind HandRank = "three_of_a_kind"
	HandTwoPair      HandRank = "two_pair"
	HandOnePair      HandRank = "one_pair"
	HandHighCard     HandRank = "high_card"
)

// HandRound Раунд "покерной" раздачи цифр
type HandRound struct {
	Phase     RoundPhase
	Bet       float64
	StartedAt time.Time

	Digits     [5]int // Пять цифр 1-9
	Rank       HandRank
	Multiplier float64 // Множитель ранга

	BasePayout  float64
	TotalPayout float64
	NetWin      float64
}
