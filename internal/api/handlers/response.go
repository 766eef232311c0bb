package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/slotcheck"
)

const (
	msgInternalError = "внутренняя ошибка сервера"

	// maxBodyBytes ограничение размера тела запроса
	maxBodyBytes = 1 << 20
)

// ErrorResponse единый формат ошибки API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON читает тело запроса в v. Неизвестные поля и лишние данные после объекта отклоняются.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after JSON object")
	}

	return nil
}

// RespondJSON пишет v с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError пишет ошибку в формате {code, message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondRejection пишет отказ проверки слота: 409 для занятого специалиста, иначе 400.
// Возвращает false, если err не является отказом проверки.
func RespondRejection(w http.ResponseWriter, err error) bool {
	var rejection *slotcheck.RejectionError
	if !errors.As(err, &rejection) {
		return false
	}

	if errors.Is(rejection, slotcheck.ErrPractitionerUnavailable) {
		RespondConflict(w, rejection.Message)
	} else {
		RespondBadRequest(w, rejection.Message)
	}
	return true
}
