package clinicregistry

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// Practitioner сотрудник клиники, к которому привязывается запись
type Practitioner struct {
	ID        types.FlexibleID `json:"id"`
	Name      string           `json:"name"`
	Specialty string           `json:"specialty,omitempty"`
	Active    *bool            `json:"active,omitempty"`
}

// IsActive сообщает, принимает ли специалист записи.
// Отсутствующий флаг считается включённым.
func (p *Practitioner) IsActive() bool {
	return p.Active == nil || *p.Active
}

// Patient пациент клиники
type Patient struct {
	ID   types.FlexibleID `json:"id"`
	Name string           `json:"name"`
}

// Service услуга / тип консультации
type Service struct {
	ID    types.FlexibleID `json:"id"`
	Name  string           `json:"name"`
	Price *float64         `json:"price,omitempty"`
}

// ErrorResponse тело ошибки бэкенда клиники
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
