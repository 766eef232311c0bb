package create_booking_line

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на создание строки расписания
type Request struct {
	UserID         int64            // ID оператора (для логирования)
	PractitionerID types.FlexibleID // ID специалиста
	PatientID      types.FlexibleID // ID пациента
	ServiceID      types.FlexibleID // ID услуги / консультации
	ScheduledAt    string           // Дата-время записи ("2025-03-10 10:45" или "2025-03-10T10:45")
	Notes          *string          // Заметки (опционально)
}

// Response модель ответа с созданной строкой расписания
type Response struct {
	ID             int64
	PractitionerID int64
	PatientID      int64
	ServiceID      int64
	ScheduledAt    string // нормализованное "YYYY-MM-DD HH:MM:SS"
	Status         string

	// Денормализованные данные для формы
	PractitionerName string
	PatientName      string
	ServiceName      string
	Notes            *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
