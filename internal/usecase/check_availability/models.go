package check_availability

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Request кандидат на запись
type Request struct {
	PractitionerID types.FlexibleID
	ProposedAt     string
	ExcludeLineID  *int64 // редактируемая строка
}

// Response результат проверки
type Response struct {
	Available bool

	// ConflictLineID id первой строки, с которой пересекается кандидат
	ConflictLineID *int64
}
