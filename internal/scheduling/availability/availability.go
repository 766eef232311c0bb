// Package availability решает, свободен ли специалист в заданный момент.
//
// Пакет не хранит состояние: каждая проверка зависит только от аргументов.
// Некорректные или пустые даты не блокируют запись (fail-open): пустое
// предлагаемое время считается доступным, а строки расписания с
// нераспознанной датой пропускаются.
package availability

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// IsAvailable проверяет, что у специалиста нет записей ближе чем
// domain.MinAppointmentSpacing к proposedAt.
// excludeLineID исключает редактируемую строку из проверки.
func IsAvailable(
	practitionerID types.FlexibleID,
	proposedAt string,
	lines []domain.BookingLine,
	excludeLineID *int64,
) bool {
	return IsAvailableAt(practitionerID, types.ParseInstant(proposedAt), lines, excludeLineID)
}

// IsAvailableAt то же, что IsAvailable, но для уже нормализованного момента
func IsAvailableAt(
	practitionerID types.FlexibleID,
	proposed types.Instant,
	lines []domain.BookingLine,
	excludeLineID *int64,
) bool {
	if !proposed.Valid() {
		return true
	}

	if len(lines) == 0 {
		return true
	}

	for i := range lines {
		if conflicts(practitionerID, proposed, &lines[i], excludeLineID) {
			return false
		}
	}

	return true
}

// FindConflict возвращает первую строку, конфликтующую с кандидатом, или nil
func FindConflict(slot domain.CandidateSlot, lines []domain.BookingLine) *domain.BookingLine {
	proposed := types.ParseInstant(slot.ProposedAt)
	if !proposed.Valid() {
		return nil
	}

	for i := range lines {
		if conflicts(slot.PractitionerID, proposed, &lines[i], slot.ExcludeLineID) {
			return &lines[i]
		}
	}

	return nil
}

func conflicts(practitionerID types.FlexibleID, proposed types.Instant, line *domain.BookingLine, excludeLineID *int64) bool {
	if excludeLineID != nil && line.ID == *excludeLineID {
		return false
	}

	if !line.IsActive() {
		return false
	}

	scheduled := line.Instant()
	if !scheduled.Valid() {
		return false
	}

	if line.PractitionerID != practitionerID.Int64() {
		return false
	}

	// Окно симметрично: запрещены записи и за 59 минут до, и через 59 минут после
	diff := proposed.Sub(scheduled)
	if diff < 0 {
		diff = -diff
	}

	return diff < domain.MinAppointmentSpacing
}
