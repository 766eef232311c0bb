package booking_line

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

const tableName = "booking_lines"

var columns = []string{
	"id",
	"practitioner_id",
	"patient_id",
	"service_id",
	"scheduled_at",
	"status",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий строк расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую строку расписания.
// Если в контексте есть транзакция (dbmetrics.WithTx), запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, line *domain.BookingLine) (*domain.BookingLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"practitioner_id",
			"patient_id",
			"service_id",
			"scheduled_at",
			"status",
			"notes",
		).
		Values(
			line.PractitionerID,
			line.PatientID,
			line.ServiceID,
			line.ScheduledAt,
			line.Status,
			line.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&line.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	line.CreatedAt = createdAt.Time
	line.UpdatedAt = updatedAt.Time

	return line, nil
}

// GetByID получает строку расписания по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	line, err := scanLine(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingLineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking line: %w", ErrScanRow, err)
	}

	return line, nil
}

// GetActive возвращает все действующие строки расписания без фильтра по датам.
// Это снимок, по которому проверяется доступность специалиста.
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельная запись
// не заняла тот же интервал.
func (r *Repository) GetActive(ctx context.Context) ([]domain.BookingLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"status": domain.StatusScheduled}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanLines(rows)
}

// GetByPractitioner возвращает строки расписания специалиста, новые первыми.
// includeCancelled = false исключает отменённые.
//
// scheduled_at хранится текстом в разных форматах ("2025-03-10T10:00",
// "2025-03-10 10:00:00"), поэтому сортировка и limit применяются после
// разбора дат, а не в SQL.
func (r *Repository) GetByPractitioner(ctx context.Context, practitionerID int64, includeCancelled bool, limit uint64) ([]domain.BookingLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"practitioner_id": practitionerID}).
		OrderBy("id DESC")

	if !includeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPractitioner - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPractitioner - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	lines, err := scanLines(rows)
	if err != nil {
		return nil, err
	}

	sortByScheduleDesc(lines)

	if limit > 0 && uint64(len(lines)) > limit {
		lines = lines[:limit]
	}

	return lines, nil
}

// sortByScheduleDesc упорядочивает строки по разобранному времени, новые первыми.
// Строки с нераспознанной датой идут в конце, порядок по id сохраняется.
func sortByScheduleDesc(lines []domain.BookingLine) {
	slices.SortStableFunc(lines, func(a, b domain.BookingLine) int {
		ai, bi := a.Instant(), b.Instant()
		switch {
		case ai.Valid() && !bi.Valid():
			return -1
		case !ai.Valid() && bi.Valid():
			return 1
		case !ai.Valid():
			return 0
		}
		return bi.Time().Compare(ai.Time())
	})
}

// UpdateSchedule переносит строку расписания на новое время
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, scheduledAt string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("scheduled_at", scheduledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %w", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "UpdateSchedule", query, args)
}

// Cancel помечает строку расписания отменённой
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %w", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "Cancel", query, args)
}

func execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingLineNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLine(row rowScanner) (*domain.BookingLine, error) {
	var line domain.BookingLine
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&line.ID,
		&line.PractitionerID,
		&line.PatientID,
		&line.ServiceID,
		&line.ScheduledAt,
		&line.Status,
		&line.Notes,
		&line.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	line.CreatedAt = createdAt.Time
	line.UpdatedAt = updatedAt.Time

	return &line, nil
}

// scanLines сканирует результаты запроса в слайс строк расписания
func scanLines(rows *sql.Rows) ([]domain.BookingLine, error) {
	lines := make([]domain.BookingLine, 0)

	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanLines - scan row: %w", ErrScanRow, err)
		}
		lines = append(lines, *line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanLines - rows error: %w", ErrScanRow, err)
	}

	return lines, nil
}
