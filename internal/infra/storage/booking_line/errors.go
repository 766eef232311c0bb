package booking_line

import "errors"

var (
	// ErrBookingLineNotFound возвращается, когда строка расписания не найдена
	ErrBookingLineNotFound = errors.New("booking_line.repository: booking line not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking_line.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking_line.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking_line.repository: failed to scan row")
)
