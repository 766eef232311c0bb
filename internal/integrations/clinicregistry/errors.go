package clinicregistry

import "errors"

var (
	// ErrPractitionerNotFound возвращается, когда специалист не найден
	ErrPractitionerNotFound = errors.New("practitioner not found")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("patient not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clinicregistry client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("clinicregistry client: invalid response")
)
