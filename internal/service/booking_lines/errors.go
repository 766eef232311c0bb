package booking_lines

import "errors"

var (
	// ErrBookingLineNotFound возвращается, когда строка расписания не найдена
	ErrBookingLineNotFound = errors.New("booking line not found")

	// ErrCannotCancel возвращается, когда строка уже отменена
	ErrCannotCancel = errors.New("booking line cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
