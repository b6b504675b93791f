package model

// Mood Глобальное "настроение" казино.
// Применяется как множитель ко всем выплатам
type Mood string

const (
	MoodChill   Mood = "chill"
	MoodNeutral Mood = "neutral"
	MoodHot     Mood = "hot"
)

// Moods Порядок обхода настроений при взвешенном выборе
var Moods = []Mood{MoodChill, MoodNeutral, MoodHot}

// Multiplier Множитель выплат для настроения
func (m Mood) Multiplier() float64 {
	switch m {
	case MoodNeutral:
		return 1.05
	case MoodHot:
		return 1.15
	default:
		return 1.0
	}
}

// Weight Вес настроения при случайном выборе сессионного настроения
func (m Mood) Weight() float64 {
	if m == MoodHot {
		return 0.2
	}
	return 0.4
}

// ParseMood Разбор строкового тега настроения из хранилища.
// Неизвестный тег тихо откатываемся к MoodNeutral, без ошибки
func ParseMood(tag string) Mood {
	switch Mood(tag) {
	case MoodChill, MoodNeutral, MoodHot:
		return Mood(tag)
	default:
		return MoodNeutral
	}
}
