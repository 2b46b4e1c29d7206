package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"pool-quote/internal/service/pricing"
	"pool-quote/internal/service/quote"
	"pool-quote/internal/storage"
)

type QuotePricer interface {
	PriceQuote(ctx context.Context, quoteID string) (*quote.PricedQuote, error)
}

type GenerateExcelStorage interface {
	GetPoolProject(ctx context.Context, id string) (*storage.PoolProject, error)
}

type GenerateExcelService struct {
	pricer  QuotePricer
	storage GenerateExcelStorage
}

func NewGenerateService(pricer QuotePricer, storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{pricer: pricer, storage: storage}
}

const (
	summarySheet   = "Quote"
	breakdownSheet = "Breakdown"
	moneyFormat    = "#,##0.00"
)

// GenerateQuoteExcel выгружает посчитанное предложение: лист договора и лист с разбивкой по категориям.
func (g *GenerateExcelService) GenerateQuoteExcel(ctx context.Context, quoteID string) ([]byte, error) {
	const op = "service.generate_excel.GenerateQuoteExcel"

	priced, err := g.pricer.PriceQuote(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	project, err := g.storage.GetPoolProject(ctx, priced.Quote.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: проект: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// --- СТИЛИ ---
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: ptr(moneyFormat),
		Border:       []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})
	moneyStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: ptr(moneyFormat)})

	// шапка предложения
	info := [][2]any{
		{"Customer", project.OwnerName},
		{"Email", project.Email},
		{"Phone", project.Phone},
		{"Site address", project.SiteAddress},
		{"Pool", priced.Quote.Snapshot.PoolName},
		{"Quote", priced.Quote.ID},
		{"Status", priced.Quote.Status},
	}
	for i, kv := range info {
		f.SetCellValue(summarySheet, cellName(1, i+1), kv[0])
		f.SetCellValue(summarySheet, cellName(2, i+1), kv[1])
	}
	f.SetCellStyle(summarySheet, "A1", cellName(1, len(info)), headerStyle)

	row := len(info) + 2
	summary := priced.Summary

	row = writeSection(f, row, "Contract", summary.LineItems, headerStyle, moneyStyle)
	row = writeTotal(f, row, "Contract total", summary.ContractTotal, totalStyle)

	row = writeSection(f, row+1, "Payment schedule", summary.PaymentSchedule, headerStyle, moneyStyle)

	if len(summary.OutsideContract) > 0 {
		row = writeSection(f, row+1, "Outside contract", summary.OutsideContract, headerStyle, moneyStyle)
	}
	writeTotal(f, row+1, "Grand total", summary.GrandTotal, totalStyle)

	f.SetColWidth(summarySheet, "A", "A", 20)
	f.SetColWidth(summarySheet, "B", "B", 40)
	f.SetColWidth(summarySheet, "C", "C", 15)

	writeBreakdown(f, priced.Breakdown, headerStyle, moneyStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

// writeSection пишет заголовок раздела и строки; возвращает следующую свободную строку.
func writeSection(f *excelize.File, row int, title string, items []pricing.LineItem, headerStyle, moneyStyle int) int {
	f.SetCellValue(summarySheet, cellName(1, row), title)
	f.SetCellValue(summarySheet, cellName(2, row), "Description")
	f.SetCellValue(summarySheet, cellName(3, row), "Amount")
	f.SetCellStyle(summarySheet, cellName(1, row), cellName(3, row), headerStyle)
	row++

	for _, it := range items {
		f.SetCellValue(summarySheet, cellName(1, row), it.Code)
		f.SetCellValue(summarySheet, cellName(2, row), it.Description)
		f.SetCellValue(summarySheet, cellName(3, row), it.Amount)
		f.SetCellStyle(summarySheet, cellName(3, row), cellName(3, row), moneyStyle)
		row++
	}

	return row
}

func writeTotal(f *excelize.File, row int, title string, amount float64, style int) int {
	f.SetCellValue(summarySheet, cellName(2, row), title)
	f.SetCellValue(summarySheet, cellName(3, row), amount)
	f.SetCellStyle(summarySheet, cellName(2, row), cellName(3, row), style)
	return row + 1
}

func writeBreakdown(f *excelize.File, b pricing.Breakdown, headerStyle, moneyStyle int) {
	rows := []struct {
		name  string
		value float64
	}{
		{"Margin %", b.MarginPercent},
		{"Margin multiplier", b.MarginMultiplier},
		{"Pool shell", b.BasePoolPrice},
		{"Excavation", b.DigPrice},
		{"Filtration", b.FiltrationPrice},
		{"Pool costs", b.IndividualCostsPrice},
		{"Fixed costs", b.FixedCostsPrice},
		{"Crane allowance", b.CraneAllowancePrice},
		{"Crane excess", b.CraneExcess},
		{"Bobcat", b.BobcatCost},
		{"Site requirements", b.SiteRequirements},
		{"Concrete", b.ConcreteCost},
		{"Paving", b.PavingCost},
		{"Water feature", b.WaterFeatureCost},
		{"Retaining walls", b.RetainingWallCost},
		{"Contract subtotal", b.ContractSubtotal},
		{"Discounts", b.DiscountTotal},
		{"Contract after discount", b.ContractAfterDiscount},
		{"HWI", b.HWICost},
		{"Contract grand total", b.ContractGrandTotal},
		{"Fencing", b.FencingCost},
		{"Heat pump", b.HeatPumpPrice},
		{"Blanket & roller", b.BlanketRollerPrice},
		{"General extras", b.GeneralExtrasPrice},
		{"Grand total", b.GrandTotal},
		{"Deposit", b.Deposit.Total},
	}

	f.SetCellValue(breakdownSheet, "A1", "Category")
	f.SetCellValue(breakdownSheet, "B1", "Amount")
	f.SetCellStyle(breakdownSheet, "A1", "B1", headerStyle)

	for i, r := range rows {
		f.SetCellValue(breakdownSheet, cellName(1, i+2), r.name)
		f.SetCellValue(breakdownSheet, cellName(2, i+2), r.value)
	}
	f.SetCellStyle(breakdownSheet, "B4", cellName(2, len(rows)+1), moneyStyle)

	f.SetPanes(breakdownSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(breakdownSheet, "A", "A", 28)
	f.SetColWidth(breakdownSheet, "B", "B", 15)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func ptr[T any](v T) *T { return &v }
