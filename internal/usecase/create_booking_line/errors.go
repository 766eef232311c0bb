package create_booking_line

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда специалист не найден
	ErrPractitionerNotFound = errors.New("create_booking_line: practitioner not found")

	// ErrPractitionerInactive возвращается, когда специалист отключён в бэкенде клиники
	ErrPractitionerInactive = errors.New("create_booking_line: practitioner is inactive")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("create_booking_line: patient not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking_line: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking_line: invalid input data")

	// ErrSlotContended возвращается, когда параллельные записи на тот же интервал
	// не дали транзакции пройти ни с одной попытки
	ErrSlotContended = errors.New("create_booking_line: slot is being booked concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking_line: internal error")
)
