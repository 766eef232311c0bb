package reschedule_booking_line

import "errors"

var (
	// ErrBookingLineNotFound возвращается, когда строка расписания не найдена
	ErrBookingLineNotFound = errors.New("reschedule_booking_line: booking line not found")

	// ErrCannotReschedule возвращается, когда строку нельзя перенести (отменена)
	ErrCannotReschedule = errors.New("reschedule_booking_line: booking line cannot be rescheduled")

	// ErrSlotContended возвращается, когда параллельные записи на тот же интервал
	// не дали транзакции пройти ни с одной попытки
	ErrSlotContended = errors.New("reschedule_booking_line: slot is being booked concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking_line: internal error")
)
