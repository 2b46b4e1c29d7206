package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"pool-quote/internal/storage"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ответе поля называем так же, как в JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(discountValidation, storage.Discount{})
	return v
}

// процентная скидка не больше 100%
func discountValidation(sl validator.StructLevel) {
	d := sl.Current().Interface().(storage.Discount)
	if d.Type == storage.DiscountPercentage && d.Value != nil && *d.Value > 100 {
		sl.ReportError(d.Value, "value", "Value", "lte", "100")
	}
}

type ValidationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Decode читает JSON из тела и проверяет validate-теги.
func Decode(r *http.Request, v any) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return Validate(v)
}

func Validate(v any) error {
	return validate.Struct(v)
}

// ProcessValidationErrors превращает ошибки валидатора в карту поле → правило.
func ProcessValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		fields[ve.Namespace()[strings.Index(ve.Namespace(), ".")+1:]] = ve.Tag()
	}

	return fields
}

// BadRequest отвечает 400: с картой полей для ошибок валидации, иначе с текстом.
func BadRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)

	if fields := ProcessValidationErrors(err); fields != nil {
		render.JSON(w, r, ValidationResponse{Error: "validation failed", Fields: fields})
		return
	}

	render.JSON(w, r, ValidationResponse{Error: err.Error()})
}

// Error переводит ошибки хранилища в HTTP-статус. Всё, что не 404/409, логируется как 500.
func Error(w http.ResponseWriter, log *slog.Logger, op string, err error, msg string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrHeatPumpIncompatible):
		log.With(slog.String("op", op), slog.String("error", err.Error())).Warn(msg)
		http.Error(w, "Conflict: heat pump is not compatible with the selected pool", http.StatusConflict)
	case errors.Is(err, storage.ErrForeignKey):
		log.With(slog.String("op", op), slog.String("error", err.Error())).Warn(msg)
		http.Error(w, "Conflict: record is referenced or references a missing record", http.StatusConflict)
	default:
		log.With(slog.String("op", op), slog.String("error", err.Error())).Error(msg)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// IDParam читает числовой id из URL.
func IDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

type Created struct {
	ID any `json:"id"`
}
