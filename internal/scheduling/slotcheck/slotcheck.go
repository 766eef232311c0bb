// Package slotcheck финальная проверка строки расписания перед сохранением.
package slotcheck

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/availability"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Rule правило, на котором остановилась проверка
type Rule string

const (
	RuleNone         Rule = ""
	RuleMissingField Rule = "missing_field"
	RuleInvalidDate  Rule = "invalid_date"
	RuleDateInPast   Rule = "date_in_past"
	RuleUnavailable  Rule = "practitioner_unavailable"
)

// Field names reported for RuleMissingField
const (
	FieldService      = "service"
	FieldPractitioner = "practitioner"
	FieldPatient      = "patient"
	FieldScheduledAt  = "scheduledAt"
)

const (
	MsgInvalidDateTime = "scheduled date-time is invalid"
	MsgDateInPast      = "date is in the past"
	MsgUnavailable     = "practitioner unavailable at the chosen time"
)

// Input данные формы на момент отправки
type Input struct {
	ServiceID      types.FlexibleID
	PractitionerID types.FlexibleID
	PatientID      types.FlexibleID
	ScheduledAt    string
	ExcludeLineID  *int64 // при редактировании: id самой строки
}

// Result итог проверки: OK либо первое нарушенное правило с сообщением
type Result struct {
	OK      bool
	Rule    Rule
	Field   string
	Message string
}

func pass() Result {
	return Result{OK: true}
}

func fail(rule Rule, field, message string) Result {
	return Result{Rule: rule, Field: field, Message: message}
}

// Validate выполняет проверки по порядку и останавливается на первой ошибке:
//  1. обязательные идентификаторы и дата-время заданы;
//  2. дата-время разбирается;
//  3. момент не раньше now;
//  4. специалист свободен (строка ExcludeLineID не учитывается).
//
// now передаётся явно: все проверки одного прохода используют одно "сейчас".
func Validate(in Input, now time.Time, lines []domain.BookingLine) Result {
	switch {
	case in.ServiceID.IsZero():
		return missing(FieldService)
	case in.PractitionerID.IsZero():
		return missing(FieldPractitioner)
	case in.PatientID.IsZero():
		return missing(FieldPatient)
	case strings.TrimSpace(in.ScheduledAt) == "":
		return missing(FieldScheduledAt)
	}

	scheduled := types.ParseInstant(in.ScheduledAt)
	if !scheduled.Valid() {
		return fail(RuleInvalidDate, FieldScheduledAt, MsgInvalidDateTime)
	}

	if scheduled.Before(now) {
		return fail(RuleDateInPast, FieldScheduledAt, MsgDateInPast)
	}

	if !availability.IsAvailableAt(in.PractitionerID, scheduled, lines, in.ExcludeLineID) {
		return fail(RuleUnavailable, FieldPractitioner, MsgUnavailable)
	}

	return pass()
}

func missing(field string) Result {
	return fail(RuleMissingField, field, fmt.Sprintf("%s is required", field))
}

// AssembleDateTime собирает "YYYY-MM-DD HH:MM" из значений пяти селекторов.
// Если какое-то значение не выбрано, возвращает пустую строку.
func AssembleDateTime(day, month, year, hour, minute string) string {
	parts := []string{day, month, year, hour, minute}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" {
			return ""
		}
	}

	return fmt.Sprintf("%s-%s-%s %s:%s",
		parts[2], pad2(parts[1]), pad2(parts[0]), pad2(parts[3]), pad2(parts[4]))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
