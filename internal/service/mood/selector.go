package mood

import (
	"math/rand"

	"moodcasino/internal/model"
)

// Selector Взвешенный выбор сессионного настроения.
// Выбор без состояния и без побочных эффектов
type Selector struct {
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Select Тянет u из [0,1) и идет по настроениям в порядке объявления,
// накапливая веса (0.4, 0.8, 1.0). Возвращается первое настроение,
// чей накопленный вес покрыл u
func (s *Selector) Select() model.Mood {
	u := s.rng.Float64()
	cumulative := 0.0

	for _, m := range model.Moods {
		cumulative += m.Weight()
		if u <= cumulative {
			return m
		}
	}

	// Страховка от накопленной ошибки округления
	return model.Moods[len(model.Moods)-1]
}
