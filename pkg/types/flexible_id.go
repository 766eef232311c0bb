package types

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleID целочисленный идентификатор, который приходит то числом (из бэкенда),
// то строкой (из поля формы). Сравнение всегда выполняется по числовому значению.
type FlexibleID int64

// ParseFlexibleID приводит строку к идентификатору; нечисловое значение даёт 0
func ParseFlexibleID(s string) FlexibleID {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FlexibleID(v)
	}

	// Значения вида "7.0" приходят из числовых полей формы
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return FlexibleID(int64(f))
	}

	return 0
}

// Int64 возвращает числовое значение
func (id FlexibleID) Int64() int64 {
	return int64(id)
}

// IsZero сообщает, что идентификатор не задан
func (id FlexibleID) IsZero() bool {
	return id <= 0
}

// String форматирует идентификатор
func (id FlexibleID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// UnmarshalJSON принимает число, строку или null
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ParseFlexibleID(s)
		return nil
	}

	*id = ParseFlexibleID(string(data))
	return nil
}

// MarshalJSON всегда пишет число
func (id FlexibleID) MarshalJSON() ([]byte, error) {
	return []byte(id.String()), nil
}
