package domain

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func (p Period) IsValid() bool {
	return p == PeriodDay || p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// periodModifiers scale a catalog snapshot to a reporting window. Value
// scales the aggregate currency figure, stock simulates depletion per
// product. Sales is part of the historical tuning table but no metric reads
// it.
type periodModifiers struct {
	Value float64
	Stock float64
	Sales float64
}

var modifiersByPeriod = map[Period]periodModifiers{
	PeriodDay:   {Value: 0.15, Stock: 0.98, Sales: 0.05},
	PeriodWeek:  {Value: 0.4, Stock: 0.95, Sales: 0.25},
	PeriodMonth: {Value: 1, Stock: 0.9, Sales: 1},
	PeriodYear:  {Value: 12, Stock: 0.5, Sales: 12},
}

// SimulatedStock is a product's stock scaled to the reporting period. Demo
// semantics: there is no sales ledger, so depletion is approximated by the
// period's stock modifier.
func SimulatedStock(product *Product, period Period) int {
	return RoundUnits(float64(product.Stock) * modifiersByPeriod[period].Stock)
}

// InventoryMetrics is the dashboard snapshot for one catalog and period.
// It has no identity beyond "last computed"; callers recompute whenever the
// catalog or the selected period changes.
type InventoryMetrics struct {
	Period        Period
	TotalProducts int
	TotalStock    int
	LowStockCount int
	OutOfStock    int
	TotalValue    Amount
	LowStockItems []*Product
}

// ComputeInventoryMetrics classifies every product by its period-simulated
// stock (low: 0 < simulated ≤ 5, out: simulated = 0; the sets are disjoint)
// and aggregates simulated stock and value. LowStockItems carries the
// original product records, not simulated copies.
func ComputeInventoryMetrics(products []*Product, period Period) *InventoryMetrics {
	mods := modifiersByPeriod[period]

	metrics := &InventoryMetrics{
		Period:        period,
		TotalProducts: len(products),
		LowStockItems: []*Product{},
	}

	totalStock := 0.0
	totalValue := 0.0
	for _, product := range products {
		totalStock += float64(product.Stock) * mods.Stock

		simulated := SimulatedStock(product, period)
		switch {
		case simulated == 0:
			metrics.OutOfStock++
		case simulated <= LowStockThreshold:
			metrics.LowStockCount++
			metrics.LowStockItems = append(metrics.LowStockItems, product)
		}

		totalValue += float64(simulated) * float64(product.EffectivePrice())
	}

	metrics.TotalStock = RoundUnits(totalStock)
	metrics.TotalValue = Round(totalValue * mods.Value)
	return metrics
}
