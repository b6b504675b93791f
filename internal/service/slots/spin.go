package slots

import (
	"context"
	"errors"
	"log"
	"time"

	"moodcasino/internal/model"
)

const (
	rows = 3
	cols = 3
)

// Spin Запускает раунд: списывает ставку, генерирует поле и
// планирует расчет после задержки. Исход известен сразу,
// но начисление происходит только на расчете
func (s *serv) Spin(ctx context.Context, bet float64) (*model.SlotsRound, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if bet <= 0 {
		return nil, errors.New("bet must be positive")
	}
	if s.round.Phase == model.RoundInProgress {
		return nil, errors.New("round already in progress")
	}
	if !s.economy.CanAfford(bet) {
		return nil, errors.New("not enough balance")
	}

	if err := s.economy.Debit(ctx, bet); err != nil {
		return nil, err
	}

	board := s.generateBoard()
	winRow, winSymbol := findWinRow(board)

	s.round = model.SlotsRound{
		Phase:     model.RoundInProgress,
		Bet:       bet,
		StartedAt: time.Now(),
		Board:     board,
		WinRow:    winRow,
		WinSymbol: winSymbol,
	}

	s.scheduler.AfterFunc(s.cfg.SettleDelay(), s.settle)

	round := s.round
	return &round, nil
}

// generateBoard Каждая ячейка независимо и равновероятно
// берется из таблицы символов
func (s *serv) generateBoard() [rows][cols]string {
	symbols := s.cfg.Symbols()
	var board [rows][cols]string
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			board[r][c] = symbols[s.rng.Intn(len(symbols))].ID
		}
	}
	return board
}

// findWinRow Сканирует линии сверху вниз, платит ПЕРВАЯ полностью
// совпавшая. Остальные линии игнорируются, даже если тоже совпали
func findWinRow(board [rows][cols]string) (int, string) {
	for r := 0; r < rows; r++ {
		if board[r][0] == board[r][1] && board[r][1] == board[r][2] {
			return r, board[r][0]
		}
	}
	return -1, ""
}

// settle Расчет раунда по таймеру.
// Множитель настроения снимается здесь, в момент расчета:
// буст, купленный после ставки, еще успевает примениться
func (s *serv) settle() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.round.Phase != model.RoundInProgress {
		return
	}

	if s.round.WinRow >= 0 {
		mult := s.economy.EffectiveMood().Multiplier()
		// В базу для начисления множитель входит еще раз:
		// экономика сверху добавит свой бонус за настроение
		base := s.round.Bet * s.symbolPayout(s.round.WinSymbol) * mult
		if err := s.economy.Credit(context.Background(), base); err != nil {
			log.Printf("slots: failed to credit payout: %v", err)
		}
		s.round.BasePayout = base
		s.round.TotalPayout = base * mult
	}

	s.round.NetWin = s.round.TotalPayout - s.round.Bet
	s.round.Phase = model.RoundResolved
}

func (s *serv) symbolPayout(id string) float64 {
	for _, sym := range s.cfg.Symbols() {
		if sym.ID == id {
			return sym.Payout
		}
	}
	return 0
}
