package domain

import "testing"

func TestPeriod_IsValid(t *testing.T) {
	tests := []struct {
		period Period
		valid  bool
	}{
		{PeriodDay, true},
		{PeriodWeek, true},
		{PeriodMonth, true},
		{PeriodYear, true},
		{"quarter", false},
		{"", false},
		{"DAY", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			if got := tt.period.IsValid(); got != tt.valid {
				t.Errorf("Period(%q).IsValid() = %v, want %v", tt.period, got, tt.valid)
			}
		})
	}
}

func TestSimulatedStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		period   Period
		expected int
	}{
		{"year halves stock", 10, PeriodYear, 5},
		{"day barely depletes", 10, PeriodDay, 10},
		{"week", 10, PeriodWeek, 10},
		{"month", 10, PeriodMonth, 9},
		{"rounds half away from zero", 5, PeriodYear, 3},
		{"zero stays zero", 0, PeriodYear, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Stock: tt.stock}
			if got := SimulatedStock(p, tt.period); got != tt.expected {
				t.Errorf("SimulatedStock(stock=%d, %s) = %d, want %d", tt.stock, tt.period, got, tt.expected)
			}
		})
	}
}

// stock=10 is low under year (simulated 5) but healthy under day
// (simulated 10).
func TestComputeInventoryMetrics_PeriodChangesClassification(t *testing.T) {
	catalog := []*Product{{ID: "p1", Price: 10000, Stock: 10}}

	year := ComputeInventoryMetrics(catalog, PeriodYear)
	if year.LowStockCount != 1 {
		t.Fatalf("expected low-stock count 1 under year, got %d", year.LowStockCount)
	}
	if len(year.LowStockItems) != 1 || year.LowStockItems[0].ID != "p1" {
		t.Fatal("expected p1 in low-stock items under year")
	}

	day := ComputeInventoryMetrics(catalog, PeriodDay)
	if day.LowStockCount != 0 {
		t.Fatalf("expected low-stock count 0 under day, got %d", day.LowStockCount)
	}
	if len(day.LowStockItems) != 0 {
		t.Fatal("expected no low-stock items under day")
	}
}

func TestComputeInventoryMetrics_EmptyCatalog(t *testing.T) {
	for _, period := range []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear} {
		t.Run(string(period), func(t *testing.T) {
			m := ComputeInventoryMetrics([]*Product{}, period)
			if m.TotalProducts != 0 || m.TotalStock != 0 || m.LowStockCount != 0 || m.OutOfStock != 0 || m.TotalValue != 0 {
				t.Fatalf("expected all-zero metrics, got %+v", m)
			}
			if len(m.LowStockItems) != 0 {
				t.Fatalf("expected empty low-stock list, got %d items", len(m.LowStockItems))
			}
		})
	}
}

func TestComputeInventoryMetrics_DisjointClassification(t *testing.T) {
	catalog := []*Product{
		{ID: "p1", Price: 10000, Stock: 0},  // out of stock in every period
		{ID: "p2", Price: 5000, Stock: 4},   // low in every period
		{ID: "p3", Price: 8000, Stock: 100}, // healthy in every period
		{ID: "p4", Price: 2000, Stock: 1},   // year: round(0.5) = 1, still low
	}

	for _, period := range []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear} {
		t.Run(string(period), func(t *testing.T) {
			m := ComputeInventoryMetrics(catalog, period)
			if m.LowStockCount+m.OutOfStock > m.TotalProducts {
				t.Fatalf("low (%d) + out (%d) exceeds total products (%d)", m.LowStockCount, m.OutOfStock, m.TotalProducts)
			}
			for _, item := range m.LowStockItems {
				if SimulatedStock(item, period) == 0 {
					t.Fatalf("product %s is in both the low-stock and out-of-stock sets", item.ID)
				}
			}
		})
	}
}

func TestComputeInventoryMetrics_MonthAggregates(t *testing.T) {
	discount := Amount(15000)
	catalog := []*Product{
		{ID: "p1", Price: 25000, DiscountPrice: &discount, Stock: 10},
		{ID: "p2", Price: 12000, Stock: 0},
	}

	m := ComputeInventoryMetrics(catalog, PeriodMonth)

	if m.TotalProducts != 2 {
		t.Fatalf("expected 2 products, got %d", m.TotalProducts)
	}
	// round(10*0.9 + 0*0.9) = 9
	if m.TotalStock != 9 {
		t.Fatalf("expected total stock 9, got %d", m.TotalStock)
	}
	if m.OutOfStock != 1 {
		t.Fatalf("expected 1 out-of-stock product, got %d", m.OutOfStock)
	}
	// simulated p1 = 9, value = round(9*15000 * 1) = 135000; discount price
	// takes precedence over list price
	if m.TotalValue != 135000 {
		t.Fatalf("expected total value 135000, got %d", m.TotalValue)
	}
}

func TestComputeInventoryMetrics_YearValueModifier(t *testing.T) {
	catalog := []*Product{{ID: "p1", Price: 1000, Stock: 10}}

	m := ComputeInventoryMetrics(catalog, PeriodYear)

	// simulated = 5, value = round(5*1000 * 12) = 60000
	if m.TotalValue != 60000 {
		t.Fatalf("expected total value 60000, got %d", m.TotalValue)
	}
	if m.TotalStock != 5 {
		t.Fatalf("expected total stock 5, got %d", m.TotalStock)
	}
}
