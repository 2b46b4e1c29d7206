package quote

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"pool-quote/internal/service/pricing"
	"pool-quote/internal/storage"
)

type QuoteStorage interface {
	GetPoolProject(ctx context.Context, id string) (*storage.PoolProject, error)
	GetPoolSpecification(ctx context.Context, id int64) (*storage.PoolSpecification, error)
	ListPoolSpecifications(ctx context.Context) ([]storage.PoolSpecification, error)
	ListPoolCosts(ctx context.Context, poolID int64) ([]storage.PoolCost, error)
	ListAllPoolCosts(ctx context.Context) (map[int64][]storage.PoolCost, error)
	GetPoolMargin(ctx context.Context, poolID int64) (*storage.PoolMargin, error)
	ListPoolMargins(ctx context.Context) ([]storage.PoolMargin, error)
	ListFixedCosts(ctx context.Context) ([]storage.FixedCost, error)
	GetCraneCost(ctx context.Context, id int64) (*storage.CraneCost, error)
	GetDigType(ctx context.Context, id int64) (*storage.DigType, error)
	ListDigTypes(ctx context.Context) ([]storage.DigType, error)
	GetFiltrationPackageDetails(ctx context.Context, id int64) (*storage.FiltrationPackageDetails, error)
	GetHeatPump(ctx context.Context, id int64) (*storage.HeatPump, error)
	HeatPumpCompatible(ctx context.Context, poolID, heatPumpID int64) (bool, error)
	ListPoolGeneralExtras(ctx context.Context, poolID int64) ([]storage.PoolGeneralExtra, error)
	CreateQuote(ctx context.Context, projectID string, snapshot storage.ProposalSnapshot) (*storage.Quote, error)
	GetQuote(ctx context.Context, id string) (*storage.Quote, error)
}

type QuoteService struct {
	storage QuoteStorage
	opts    pricing.Options
}

func NewQuoteService(storage QuoteStorage, opts pricing.Options) *QuoteService {
	return &QuoteService{storage: storage, opts: opts}
}

type PricedQuote struct {
	Quote     *storage.Quote          `json:"quote"`
	Breakdown pricing.Breakdown       `json:"breakdown"`
	Summary   pricing.ContractSummary `json:"summary"`
}

// BuildSnapshot собирает снимок предложения по проекту: справочники читаются
// параллельно, затем поверх них накладывается выбор продавца.
// Насос, которого нет в матрице совместимости бассейна, даёт ErrHeatPumpIncompatible.
func (s *QuoteService) BuildSnapshot(ctx context.Context, projectID string) (storage.ProposalSnapshot, error) {
	const op = "service.quote.BuildSnapshot"

	project, err := s.storage.GetPoolProject(ctx, projectID)
	if err != nil {
		return storage.ProposalSnapshot{}, fmt.Errorf("%s: проект: %w", op, err)
	}

	var (
		spec       *storage.PoolSpecification
		poolCosts  []storage.PoolCost
		margin     *storage.PoolMargin
		fixedCosts []storage.FixedCost
		crane      *storage.CraneCost
		heatPump   *storage.HeatPump
		compatible bool
		poolExtras []storage.PoolGeneralExtra
	)

	poolID := project.PoolSpecificationID

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		spec, err = s.storage.GetPoolSpecification(gCtx, poolID)
		if err != nil {
			return fmt.Errorf("бассейн: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		poolCosts, err = s.storage.ListPoolCosts(gCtx, poolID)
		if err != nil {
			return fmt.Errorf("затраты бассейна: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		margin, err = s.storage.GetPoolMargin(gCtx, poolID)
		if errors.Is(err, storage.ErrNotFound) {
			// маржа не задана: продаём по себестоимости
			margin, err = &storage.PoolMargin{PoolSpecificationID: poolID}, nil
		}
		if err != nil {
			return fmt.Errorf("маржа: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fixedCosts, err = s.storage.ListFixedCosts(gCtx)
		if err != nil {
			return fmt.Errorf("фиксированные затраты: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		poolExtras, err = s.storage.ListPoolGeneralExtras(gCtx, poolID)
		if err != nil {
			return fmt.Errorf("доп. позиции бассейна: %w", err)
		}
		return nil
	})
	if project.CraneCostID != nil {
		g.Go(func() error {
			var err error
			crane, err = s.storage.GetCraneCost(gCtx, *project.CraneCostID)
			if err != nil {
				return fmt.Errorf("кран: %w", err)
			}
			return nil
		})
	}
	if project.HeatPumpID != nil {
		g.Go(func() error {
			var err error
			heatPump, err = s.storage.GetHeatPump(gCtx, *project.HeatPumpID)
			if err != nil {
				return fmt.Errorf("тепловой насос: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			compatible, err = s.storage.HeatPumpCompatible(gCtx, poolID, *project.HeatPumpID)
			if err != nil {
				return fmt.Errorf("совместимость насоса: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return storage.ProposalSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	if project.HeatPumpID != nil && !compatible {
		return storage.ProposalSnapshot{}, fmt.Errorf("%s: насос %d, бассейн %d: %w",
			op, *project.HeatPumpID, poolID, storage.ErrHeatPumpIncompatible)
	}

	// копка и фильтрация по умолчанию берутся из спецификации бассейна
	digTypeID := project.DigTypeID
	if digTypeID == nil {
		digTypeID = spec.DigTypeID
	}
	filtrationID := project.FiltrationPackageID
	if filtrationID == nil {
		filtrationID = spec.FiltrationPackageID
	}

	var (
		dig        *storage.DigType
		filtration *storage.FiltrationPackageDetails
	)

	g, gCtx = errgroup.WithContext(ctx)
	if digTypeID != nil {
		g.Go(func() error {
			var err error
			dig, err = s.storage.GetDigType(gCtx, *digTypeID)
			if err != nil {
				return fmt.Errorf("тип копки: %w", err)
			}
			return nil
		})
	}
	if filtrationID != nil {
		g.Go(func() error {
			var err error
			filtration, err = s.storage.GetFiltrationPackageDetails(gCtx, *filtrationID)
			if err != nil {
				return fmt.Errorf("пакет фильтрации: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return storage.ProposalSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	snap := storage.ProposalSnapshot{
		PoolSpecificationID: &spec.ID,
		PoolName:            spec.Name,
		PoolBuyPrice:        &spec.BuyPriceIncGST,
		MarginPercent:       &margin.MarginPercentage,
	}

	for _, c := range poolCosts {
		amount := c.Amount
		snap.IndividualCosts = append(snap.IndividualCosts, storage.CostLine{Name: c.Name, Amount: &amount})
	}
	for _, c := range fixedCosts {
		price := c.Price
		snap.FixedCosts = append(snap.FixedCosts, storage.CostLine{Name: c.Name, Amount: &price})
	}

	if crane != nil {
		snap.CraneCost = &crane.Price
	}

	if dig != nil {
		snap.DigName = dig.Name
		snap.DigExcavationHours = &dig.ExcavationHours
		snap.DigExcavationRate = &dig.ExcavationHourlyRate
		snap.DigTruckQuantity = &dig.TruckQuantity
		snap.DigTruckHours = &dig.TruckHours
		snap.DigTruckRate = &dig.TruckHourlyRate
	}

	if filtration != nil {
		in := pricing.FiltrationInputFromPackage(*filtration)
		snap.FiltrationPackageName = filtration.Name
		snap.PumpPrice = in.PumpPrice
		snap.FilterPrice = in.FilterPrice
		snap.SanitiserPrice = in.SanitiserPrice
		snap.LightPrice = in.LightPrice
		snap.HandoverKit = in.HandoverKit
	}

	if heatPump != nil {
		snap.HeatPumpIncluded = true
		snap.HeatPumpPrice = &heatPump.RRP
	}

	for _, e := range poolExtras {
		price, qty := e.RRP, e.Quantity
		snap.GeneralExtras = append(snap.GeneralExtras, storage.ExtraLine{Name: e.Name, Price: &price, Quantity: &qty})
	}

	applySelections(&snap, project.Selections)

	return snap, nil
}

func applySelections(snap *storage.ProposalSnapshot, sel storage.ProjectSelections) {
	snap.BobcatCost = sel.BobcatCost
	snap.SiteRequirements = sel.SiteRequirements
	snap.ConcreteCost = sel.ConcreteCost
	snap.PavingCost = sel.PavingCost
	snap.FencingCost = sel.FencingCost
	snap.WaterFeatureCost = sel.WaterFeatureCost
	snap.RetainingWallCost = sel.RetainingWallCost
	snap.BlanketRollerIncluded = sel.BlanketRollerIncluded
	snap.BlanketRollerPrice = sel.BlanketRollerPrice
	// позиции из проекта добавляются к комплекту бассейна
	snap.GeneralExtras = append(snap.GeneralExtras, sel.GeneralExtras...)
	snap.Discounts = sel.Discounts

	if sel.MarginOverride != nil {
		m := *sel.MarginOverride
		snap.MarginPercent = &m
	}
}

// CreateQuote фиксирует снимок на текущих ценах справочников в черновик предложения.
func (s *QuoteService) CreateQuote(ctx context.Context, projectID string) (*storage.Quote, error) {
	const op = "service.quote.CreateQuote"

	snap, err := s.BuildSnapshot(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q, err := s.storage.CreateQuote(ctx, projectID, snap)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка сохранения предложения: %w", op, err)
	}

	return q, nil
}

// PriceQuote считает сохранённый снимок. Справочники не перечитываются,
// поэтому цена предложения не меняется после правок в админке.
func (s *QuoteService) PriceQuote(ctx context.Context, quoteID string) (*PricedQuote, error) {
	const op = "service.quote.PriceQuote"

	q, err := s.storage.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := pricing.Calculate(q.Snapshot, s.opts)

	return &PricedQuote{
		Quote:     q,
		Breakdown: b,
		Summary:   pricing.ContractSummaryLineItems(b),
	}, nil
}

// Calculate считает произвольный снимок, пришедший с клиента.
func (s *QuoteService) Calculate(snap storage.ProposalSnapshot) (pricing.Breakdown, pricing.ContractSummary) {
	b := pricing.Calculate(snap, s.opts)
	return b, pricing.ContractSummaryLineItems(b)
}

// PoolPricing строит таблицу цен на сайте по всем бассейнам.
func (s *QuoteService) PoolPricing(ctx context.Context) ([]pricing.PoolPriceRow, error) {
	const op = "service.quote.PoolPricing"

	var (
		pools      []storage.PoolSpecification
		poolCosts  map[int64][]storage.PoolCost
		margins    []storage.PoolMargin
		fixedCosts []storage.FixedCost
		digTypes   []storage.DigType
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pools, err = s.storage.ListPoolSpecifications(gCtx)
		if err != nil {
			return fmt.Errorf("бассейны: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		poolCosts, err = s.storage.ListAllPoolCosts(gCtx)
		if err != nil {
			return fmt.Errorf("затраты бассейнов: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		margins, err = s.storage.ListPoolMargins(gCtx)
		if err != nil {
			return fmt.Errorf("маржи: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fixedCosts, err = s.storage.ListFixedCosts(gCtx)
		if err != nil {
			return fmt.Errorf("фиксированные затраты: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		digTypes, err = s.storage.ListDigTypes(gCtx)
		if err != nil {
			return fmt.Errorf("типы копки: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filtrationCosts, err := s.filtrationCosts(ctx, pools)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	marginByPool := make(map[int64]float64, len(margins))
	for _, m := range margins {
		marginByPool[m.PoolSpecificationID] = m.MarginPercentage
	}

	digCostByID := make(map[int64]float64, len(digTypes))
	for _, d := range digTypes {
		digCostByID[d.ID] = pricing.ExcavationCost(pricing.ExcavationInputFromDigType(d))
	}

	var fixedTotal float64
	for _, c := range fixedCosts {
		fixedTotal += c.Price
	}

	rows := make([]pricing.PoolPriceRow, 0, len(pools))
	for _, p := range pools {
		in := pricing.PoolCostInput{
			PoolID:        p.ID,
			PoolName:      p.Name,
			BuyPrice:      p.BuyPriceIncGST,
			FixedCosts:    fixedTotal,
			MarginPercent: marginByPool[p.ID],
		}
		for _, c := range poolCosts[p.ID] {
			in.IndividualCosts += c.Amount
		}
		if p.DigTypeID != nil {
			in.DigCost = digCostByID[*p.DigTypeID]
		}
		if p.FiltrationPackageID != nil {
			in.FiltrationCost = filtrationCosts[*p.FiltrationPackageID]
		}

		rows = append(rows, pricing.PoolWebPrice(in, s.opts.CraneAllowance))
	}

	return rows, nil
}

// filtrationCosts подтягивает каждый используемый пакет фильтрации один раз.
func (s *QuoteService) filtrationCosts(ctx context.Context, pools []storage.PoolSpecification) (map[int64]float64, error) {
	ids := make(map[int64]struct{})
	for _, p := range pools {
		if p.FiltrationPackageID != nil {
			ids[*p.FiltrationPackageID] = struct{}{}
		}
	}

	var mu sync.Mutex
	costs := make(map[int64]float64, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for id := range ids {
		g.Go(func() error {
			details, err := s.storage.GetFiltrationPackageDetails(gCtx, id)
			if err != nil {
				return fmt.Errorf("пакет фильтрации id=%d: %w", id, err)
			}
			cost := pricing.FiltrationPackagePrice(pricing.FiltrationInputFromPackage(*details))

			mu.Lock()
			costs[id] = cost
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return costs, nil
}
