package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pool-quote/http-server/response"
)

type QuoteExcelGenerator interface {
	GenerateQuoteExcel(ctx context.Context, quoteID string) ([]byte, error)
}

func QuoteExcel(log *slog.Logger, gen QuoteExcelGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.QuoteExcel"

		id := chi.URLParam(r, "id")
		if _, err := uuid.Parse(id); err != nil {
			http.Error(w, "invalid quote id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second) // на Excel можно побольше времени
		defer cancel()

		excelBytes, err := gen.GenerateQuoteExcel(ctx, id)
		if err != nil {
			response.Error(w, log, op, err, "ошибка формирования Excel")
			return
		}

		fileName := fmt.Sprintf("Quote_%s_%s.xlsx", id[:8], time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
