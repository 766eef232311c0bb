package get_calendar_bounds

import (
	"strconv"
	"strings"
	"time"

	getCalendarBounds "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar_bounds"
)

// MonthResponse элемент селектора месяцев
type MonthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// CalendarBoundsResponse HTTP response model
type CalendarBoundsResponse struct {
	ReferenceNow string          `json:"referenceNow"`
	Years        []int           `json:"years"`
	Months       []MonthResponse `json:"months"`
	Days         []string        `json:"days"`
	Hours        []string        `json:"hours"`
	Minutes      []string        `json:"minutes"`
	SelectedDay  *string         `json:"selectedDay,omitempty"`
}

// ToUseCaseRequest собирает запрос из query параметров year, month, day.
// Нечисловой год игнорируется: используется текущий.
func ToUseCaseRequest(yearStr, monthStr, dayStr string) *getCalendarBounds.Request {
	req := &getCalendarBounds.Request{}

	if year, err := strconv.Atoi(strings.TrimSpace(yearStr)); err == nil {
		req.Year = &year
	}
	if monthStr != "" {
		req.Month = &monthStr
	}
	if dayStr != "" {
		req.Day = &dayStr
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarBounds.Response) *CalendarBoundsResponse {
	months := make([]MonthResponse, 0, len(resp.Bounds.Months))
	for _, m := range resp.Bounds.Months {
		months = append(months, MonthResponse{Token: m.Token, Name: m.Month.String()})
	}

	return &CalendarBoundsResponse{
		ReferenceNow: resp.ReferenceNow.Format(time.RFC3339),
		Years:        resp.Bounds.Years,
		Months:       months,
		Days:         resp.Bounds.Days,
		Hours:        resp.Bounds.Hours,
		Minutes:      resp.Bounds.Minutes,
		SelectedDay:  resp.Bounds.SelectedDay,
	}
}
