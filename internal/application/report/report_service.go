package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/rfq"
)

// commissionRate is the flat estimate applied to brokerage profit when
// no per-supplier commission is recorded.
var commissionRate = decimal.NewFromFloat(0.1)

// CompletedOrderRow is one completed RFQ in the roll-up report
type CompletedOrderRow struct {
	RFQNumber   string          `json:"rfq_number"`
	ClientName  string          `json:"client_name"`
	ProjectName string          `json:"project_name"`
	ItemCount   int             `json:"item_count"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Profit      decimal.Decimal `json:"profit"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// CompletedOrdersReport is the completed-orders roll-up
type CompletedOrdersReport struct {
	Orders     []CompletedOrderRow `json:"orders"`
	OrderCount int                 `json:"order_count"`
	TotalValue decimal.Decimal     `json:"total_value"`
	Profit     decimal.Decimal     `json:"profit"`
	From       time.Time           `json:"from"`
	To         time.Time           `json:"to"`
}

// FinanceSummary aggregates completed RFQs into the finance dashboard
// numbers. Revenue and costs sum every supplier quote column on every
// item, mirroring how the quotation totals are built.
type FinanceSummary struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Costs          decimal.Decimal `json:"costs"`
	Profit         decimal.Decimal `json:"profit"`
	Commission     decimal.Decimal `json:"commission"`
	CompletedCount int             `json:"completed_count"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
}

// ReportService builds reports over completed RFQs
type ReportService struct {
	rfqRepo rfq.Repository
}

// NewReportService creates a new ReportService
func NewReportService(rfqRepo rfq.Repository) *ReportService {
	return &ReportService{
		rfqRepo: rfqRepo,
	}
}

// CompletedOrders builds the completed-orders roll-up for the given
// completion time range.
func (s *ReportService) CompletedOrders(ctx context.Context, from, to time.Time) (*CompletedOrdersReport, error) {
	completed, err := s.rfqRepo.FindCompletedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &CompletedOrdersReport{
		Orders:     make([]CompletedOrderRow, 0, len(completed)),
		OrderCount: len(completed),
		TotalValue: decimal.Zero,
		Profit:     decimal.Zero,
		From:       from,
		To:         to,
	}

	for i := range completed {
		r := &completed[i]
		report.Orders = append(report.Orders, CompletedOrderRow{
			RFQNumber:   r.RFQNumber,
			ClientName:  r.ClientName,
			ProjectName: r.ProjectName,
			ItemCount:   r.ItemCount(),
			TotalValue:  r.GrandTotal,
			Profit:      r.TotalProfit,
			CompletedAt: r.CompletedAt,
		})
		report.TotalValue = report.TotalValue.Add(r.GrandTotal)
		report.Profit = report.Profit.Add(r.TotalProfit)
	}

	return report, nil
}

// Finance builds the finance summary for the given completion time
// range. Costs are the supplier base prices, revenue the displayed
// prices, profit the markups; commission is a flat estimate on profit.
func (s *ReportService) Finance(ctx context.Context, from, to time.Time) (*FinanceSummary, error) {
	completed, err := s.rfqRepo.FindCompletedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &FinanceSummary{
		Revenue:        decimal.Zero,
		Costs:          decimal.Zero,
		Profit:         decimal.Zero,
		CompletedCount: len(completed),
		From:           from,
		To:             to,
	}

	for i := range completed {
		revenue := rfq.Subtotal(completed[i].Items)
		profit := rfq.TotalProfit(completed[i].Items)

		summary.Revenue = summary.Revenue.Add(revenue)
		summary.Profit = summary.Profit.Add(profit)
		summary.Costs = summary.Costs.Add(revenue.Sub(profit))
	}

	summary.Commission = summary.Profit.Mul(commissionRate)
	return summary, nil
}
