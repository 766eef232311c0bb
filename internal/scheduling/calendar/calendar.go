// Package calendar строит допустимые значения для селекторов
// дня/месяца/года/часа/минуты так, чтобы из них нельзя было собрать
// прошедшую дату или несуществующий день месяца.
package calendar

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

var monthTokens = [12]string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}

// IsLeapYear григорианское правило: кратен 4 и не кратен 100, либо кратен 400
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth возвращает число дней месяца "01".."12" в году yearToken.
// Нераспознанный месяц даёт 31, нечисловой год считается невисокосным.
func DaysInMonth(monthToken, yearToken string) int {
	year, err := strconv.Atoi(strings.TrimSpace(yearToken))
	if err != nil {
		year = 1
	}
	return daysIn(monthToken, year)
}

func daysIn(monthToken string, year int) int {
	switch strings.TrimSpace(monthToken) {
	case "04", "06", "09", "11":
		return 30
	case "02":
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// MonthToken форматирует месяц как двузначный токен
func MonthToken(m time.Month) string {
	return fmt.Sprintf("%02d", int(m))
}

// DayToken форматирует день как двузначный токен
func DayToken(day int) string {
	return fmt.Sprintf("%02d", day)
}

// AvailableMonths перечисляет месяцы, доступные для выбора в selectedYear.
// Для текущего года месяцы раньше текущего исключаются, для будущих доступны все,
// для прошедших лет последовательность пуста.
// Последовательность ленивая и перезапускаемая: каждый range считает заново.
func AvailableMonths(selectedYear int, now time.Time) iter.Seq[domain.MonthOption] {
	return func(yield func(domain.MonthOption) bool) {
		if selectedYear < now.Year() {
			return
		}
		for i, token := range monthTokens {
			month := time.Month(i + 1)
			if selectedYear == now.Year() && month < now.Month() {
				continue
			}
			if !yield(domain.MonthOption{Token: token, Month: month}) {
				return
			}
		}
	}
}

// AvailableDays перечисляет дни "01".."NN" выбранного месяца.
// Для текущего месяца текущего года дни раньше сегодняшнего исключаются.
// Прошедший год или уже прошедший месяц текущего года дают пустую последовательность.
func AvailableDays(monthToken string, selectedYear int, now time.Time) iter.Seq[string] {
	return func(yield func(string) bool) {
		if isPastMonth(monthToken, selectedYear, now) {
			return
		}

		total := daysIn(monthToken, selectedYear)
		isCurrentMonth := selectedYear == now.Year() && strings.TrimSpace(monthToken) == MonthToken(now.Month())

		for day := 1; day <= total; day++ {
			if isCurrentMonth && day < now.Day() {
				continue
			}
			if !yield(DayToken(day)) {
				return
			}
		}
	}
}

func isPastMonth(monthToken string, selectedYear int, now time.Time) bool {
	if selectedYear < now.Year() {
		return true
	}
	if selectedYear > now.Year() {
		return false
	}
	// Нераспознанный месяц не фильтруется
	month, err := strconv.Atoi(strings.TrimSpace(monthToken))
	if err != nil || month < 1 || month > 12 {
		return false
	}
	return time.Month(month) < now.Month()
}

// AvailableYears перечисляет span лет начиная с текущего
func AvailableYears(now time.Time, span int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < span; i++ {
			if !yield(now.Year() + i) {
				return
			}
		}
	}
}

// Hours перечисляет "00".."23". Часы не фильтруются по текущему времени.
func Hours() iter.Seq[string] {
	return func(yield func(string) bool) {
		for h := 0; h < 24; h++ {
			if !yield(fmt.Sprintf("%02d", h)) {
				return
			}
		}
	}
}

// Minutes перечисляет минуты с шагом step ("00", "05", ...). step <= 0 означает 1.
func Minutes(step int) iter.Seq[string] {
	if step <= 0 {
		step = 1
	}
	return func(yield func(string) bool) {
		for m := 0; m < 60; m += step {
			if !yield(fmt.Sprintf("%02d", m)) {
				return
			}
		}
	}
}

// ClampDay прижимает ранее выбранный день к длине нового месяца.
// Вызывается после каждой смены месяца или года: 31 в феврале становится 28/29.
// Нечисловой день возвращается как есть.
func ClampDay(dayToken, monthToken string, year int) string {
	day, err := strconv.Atoi(strings.TrimSpace(dayToken))
	if err != nil {
		return dayToken
	}

	maxDay := daysIn(monthToken, year)
	if day > maxDay {
		return DayToken(maxDay)
	}
	if day < 1 {
		return DayToken(1)
	}

	return DayToken(day)
}
