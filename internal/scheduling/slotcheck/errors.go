package slotcheck

import "errors"

var (
	// ErrMissingField не заполнен обязательный идентификатор или дата-время
	ErrMissingField = errors.New("slotcheck: required field is missing")

	// ErrInvalidDateTime дата-время не разбирается
	ErrInvalidDateTime = errors.New("slotcheck: invalid date-time")

	// ErrDateInPast дата-время раньше текущего момента
	ErrDateInPast = errors.New("slotcheck: date is in the past")

	// ErrPractitionerUnavailable у специалиста есть запись ближе часа
	ErrPractitionerUnavailable = errors.New("slotcheck: practitioner unavailable")
)

// RejectionError отказ проверки слота. Message предназначено для пользователя.
type RejectionError struct {
	Rule    Rule
	Field   string
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// Unwrap позволяет проверять отказ через errors.Is(err, ErrDateInPast) и т.п.
func (e *RejectionError) Unwrap() error {
	switch e.Rule {
	case RuleMissingField:
		return ErrMissingField
	case RuleInvalidDate:
		return ErrInvalidDateTime
	case RuleDateInPast:
		return ErrDateInPast
	case RuleUnavailable:
		return ErrPractitionerUnavailable
	default:
		return nil
	}
}

// Err возвращает nil для успешной проверки, иначе *RejectionError
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return &RejectionError{Rule: r.Rule, Field: r.Field, Message: r.Message}
}
