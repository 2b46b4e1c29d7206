package calculate

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"pool-quote/http-server/response"
	"pool-quote/internal/service/pricing"
	"pool-quote/internal/storage"
)

type SnapshotCalculator interface {
	Calculate(snap storage.ProposalSnapshot) (pricing.Breakdown, pricing.ContractSummary)
}

type PoolPricer interface {
	PoolPricing(ctx context.Context) ([]pricing.PoolPriceRow, error)
}

type Resp struct {
	Breakdown pricing.Breakdown       `json:"breakdown"`
	Summary   pricing.ContractSummary `json:"summary"`
}

type HWIResp struct {
	Amount        float64 `json:"amount"`
	InsuranceCost float64 `json:"insurance_cost"`
}

type CostResp struct {
	Cost float64 `json:"cost"`
}

// CalculateSnapshot считает произвольный снимок без сохранения, для живого пересчёта в форме.
func CalculateSnapshot(log *slog.Logger, calc SnapshotCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculate.CalculateSnapshot"

		var snap storage.ProposalSnapshot
		if err := response.Decode(r, &snap); err != nil {
			log.Debug("некорректный снимок", slog.String("op", op), slog.String("error", err.Error()))
			response.BadRequest(w, r, err)
			return
		}

		b, summary := calc.Calculate(snap)

		render.JSON(w, r, Resp{Breakdown: b, Summary: summary})
	}
}

func HWI(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculate.HWI"

		amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
		if err != nil {
			log.Debug("некорректная сумма", slog.String("op", op), slog.String("amount", r.URL.Query().Get("amount")))
			http.Error(w, "invalid amount", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, HWIResp{Amount: amount, InsuranceCost: pricing.HWIInsuranceCost(amount)})
	}
}

func Excavation(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculate.Excavation"

		var in pricing.ExcavationInput
		if err := render.DecodeJSON(r.Body, &in); err != nil {
			log.Debug("некорректный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, CostResp{Cost: pricing.RoundMoney(pricing.ExcavationCost(in))})
	}
}

func Filtration(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculate.Filtration"

		var in pricing.FiltrationInput
		if err := render.DecodeJSON(r.Body, &in); err != nil {
			log.Debug("некорректный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		render.JSON(w, r, CostResp{Cost: pricing.RoundMoney(pricing.FiltrationPackagePrice(in))})
	}
}

func PoolPricing(log *slog.Logger, p PoolPricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.calculate.PoolPricing"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rows, err := p.PoolPricing(ctx)
		if err != nil {
			response.Error(w, log, op, err, "ошибка расчёта цен бассейнов")
			return
		}

		render.JSON(w, r, rows)
	}
}
