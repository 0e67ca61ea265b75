package statistics

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hazelshop/admin-backend/pkg/types"
)

// Service provides finance-facing order statistics. Finance reads orders
// through the coarse 3-state projection, not the operational 5-state
// lifecycle, so grouping happens in two steps: SQL groups by the stored
// status, then the rows are folded through FinanceStatusOf.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

type FinanceSummaryItem struct {
	Status types.FinanceStatus `json:"status"`
	Count  int64               `json:"count"`
	Amount int64               `json:"amount"`
}

type FinanceSummaryResponse struct {
	Items      []FinanceSummaryItem `json:"items"`
	TotalCount int64                `json:"total_count"`
}

// financeOrder fixes the display order of the coarse statuses.
var financeOrder = []types.FinanceStatus{
	types.FinanceStatusCompleted,
	types.FinanceStatusInProgress,
	types.FinanceStatusCanceled,
}

type statusRow struct {
	Status types.OrderStatus `json:"status"`
	Count  int64             `json:"count"`
	Amount int64             `json:"amount"`
}

// filtersWhere combines filters into a single AND expression.
type filtersWhere struct{ filters []*types.CommonFilter }

func (w filtersWhere) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	for i, f := range w.filters {
		if i > 0 {
			builder.WriteString(" AND ")
		}
		f.Build(builder)
	}
}

// OrderFinanceSummary returns order counts and amounts per coarse finance
// status, in the fixed display order. Every coarse status is present in the
// result even when its count is zero.
func (s *Service) OrderFinanceSummary(ctx context.Context, filters []*types.CommonFilter) (*FinanceSummaryResponse, error) {
	var rows []statusRow
	err := s.db.WithContext(ctx).Table("orders").
		Select("status, count(*) as count, sum(amount) as amount").
		Where(clause.Where{Exprs: []clause.Expression{filtersWhere{filters: filters}}}).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}

	grouped := lo.GroupBy(rows, func(r statusRow) types.FinanceStatus {
		return types.FinanceStatusOf(r.Status)
	})

	resp := &FinanceSummaryResponse{}
	for _, fs := range financeOrder {
		item := FinanceSummaryItem{Status: fs}
		for _, r := range grouped[fs] {
			item.Count += r.Count
			item.Amount += r.Amount
		}
		resp.Items = append(resp.Items, item)
		resp.TotalCount += item.Count
	}
	return resp, nil
}

type DailyOrderCountItem struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DailyOrderCount returns order counts grouped by creation day, oldest first.
func (s *Service) DailyOrderCount(ctx context.Context, filters []*types.CommonFilter) ([]DailyOrderCountItem, error) {
	var results []DailyOrderCountItem
	err := s.db.WithContext(ctx).Table("orders").
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, count(*) as count").
		Where(clause.Where{Exprs: []clause.Expression{filtersWhere{filters: filters}}}).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date").
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily orders: %w", err)
	}
	return results, nil
}
