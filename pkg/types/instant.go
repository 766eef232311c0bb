package types

import (
	"strings"
	"time"
)

// LocalDateTimeLayout формат даты-времени без часового пояса, который отдаёт бэкенд клиники
const LocalDateTimeLayout = "2006-01-02 15:04:05"

const localDateTimeLength = len(LocalDateTimeLayout)

// Instant результат нормализации даты-времени.
// Нулевое значение означает "нет момента": пустая или нераспознанная строка.
// Вызывающий код обязан трактовать его как "ограничений нет", а не как конфликт.
type Instant struct {
	t     time.Time
	valid bool
}

// NoInstant возвращает явное значение "нет момента"
func NoInstant() Instant {
	return Instant{}
}

// InstantOf оборачивает уже известное время
func InstantOf(t time.Time) Instant {
	return Instant{t: t, valid: true}
}

// ParseInstant приводит строку вида "2024-06-10T14:30" / "2024-06-10 14:30:15"
// к единому моменту времени в локальной зоне.
// Ошибки разбора не возвращаются: результатом будет NoInstant().
func ParseInstant(s string) Instant {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoInstant()
	}

	s = strings.Replace(s, "T", " ", 1)

	// Дополняем недостающие секунды: "2024-06-10 14:30" -> "2024-06-10 14:30:00"
	if len(s) < localDateTimeLength {
		s = (s + strings.Repeat(":00", localDateTimeLength))[:localDateTimeLength]
	}

	t, err := time.ParseInLocation(LocalDateTimeLayout, s, time.Local)
	if err != nil {
		return NoInstant()
	}

	return InstantOf(t)
}

// Valid сообщает, удалось ли получить момент времени
func (i Instant) Valid() bool {
	return i.valid
}

// Time возвращает момент времени (нулевое время для NoInstant)
func (i Instant) Time() time.Time {
	return i.t
}

// Sub возвращает разницу i - other
func (i Instant) Sub(other Instant) time.Duration {
	return i.t.Sub(other.t)
}

// Before сообщает, что момент строго раньше t. Для NoInstant всегда false.
func (i Instant) Before(t time.Time) bool {
	return i.valid && i.t.Before(t)
}

// String форматирует момент в LocalDateTimeLayout; для NoInstant возвращает пустую строку
func (i Instant) String() string {
	if !i.valid {
		return ""
	}
	return i.t.Format(LocalDateTimeLayout)
}
