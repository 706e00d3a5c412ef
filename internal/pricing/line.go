package pricing

import (
	"fmt"
	"time"
)

// Line sources — where a quote line came from.
const (
	SourceCatalog       = "catalog"
	SourceManual        = "manual"
	SourceSubcontractor = "subcontractor"
)

// LineItem is the normalized quote row every category editor produces.
// It is stored as-is inside the quote's items JSONB column.
type LineItem struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Source       string  `json:"source"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit,omitempty"`

	UnitPrice     float64 `json:"unitPrice"`
	TotalPrice    float64 `json:"totalPrice"`
	TotalCost     float64 `json:"totalCost"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profitPercent"`

	WorkDuration   float64 `json:"workDuration,omitempty"`
	IgnoreQuantity bool    `json:"ignoreQuantity,omitempty"`

	// Tiling-only fields.
	PanelQuantity        float64 `json:"panelQuantity,omitempty"`
	ComplexityLevel      string  `json:"complexityLevel,omitempty"`
	ComplexityMultiplier float64 `json:"complexityMultiplier,omitempty"`
	SelectedSize         string  `json:"selectedSize,omitempty"`
	WorkType             string  `json:"workType,omitempty"`
}

// LineMeta carries the descriptive fields of a line being assembled.
type LineMeta struct {
	CategoryID   string
	CategoryName string
	Source       string
	Name         string
	Description  string
	Unit         string
}

// LineID builds the category-prefixed id used for quote rows.
func LineID(categoryID string, at time.Time) string {
	return fmt.Sprintf("%s_%d", categoryID, at.UnixMilli())
}

// AssembleLine packages a computed LineResult into a quote row. The
// timestamp is passed in so assembly stays deterministic under test.
func AssembleLine(meta LineMeta, res LineResult, at time.Time) LineItem {
	return LineItem{
		ID:             LineID(meta.CategoryID, at),
		CategoryID:     meta.CategoryID,
		CategoryName:   meta.CategoryName,
		Source:         meta.Source,
		Name:           meta.Name,
		Description:    meta.Description,
		Quantity:       res.Quantity,
		Unit:           meta.Unit,
		UnitPrice:      res.ClientPricePerUnit,
		TotalPrice:     res.TotalPrice,
		TotalCost:      res.TotalCost,
		Profit:         res.Profit,
		ProfitPercent:  res.ProfitPercent,
		WorkDuration:   res.WorkDays,
		IgnoreQuantity: res.IgnoreQuantity,
	}
}

// AssembleTilingLine packages tiling metrics into a quote row. Quantity is
// recorded but tiling totals are already quantity-inclusive.
func AssembleTilingLine(meta LineMeta, item TilingItem, m TilingMetrics, at time.Time) LineItem {
	unitPrice := 0.0
	if q := Num(item.Quantity); q > 0 {
		unitPrice = m.TotalPrice / q
	}
	return LineItem{
		ID:                   LineID(meta.CategoryID, at),
		CategoryID:           meta.CategoryID,
		CategoryName:         meta.CategoryName,
		Source:               meta.Source,
		Name:                 meta.Name,
		Description:          meta.Description,
		Quantity:             Num(item.Quantity),
		Unit:                 meta.Unit,
		UnitPrice:            unitPrice,
		TotalPrice:           m.TotalPrice,
		TotalCost:            m.TotalContractorCost,
		Profit:               m.Profit,
		ProfitPercent:        m.ProfitPercent,
		WorkDuration:         m.TotalWorkDays,
		PanelQuantity:        Num(item.PanelQuantity),
		ComplexityMultiplier: Num(item.ComplexityMultiplier),
	}
}

// Totals extracts the slice of a line the summary aggregators consume.
func (li LineItem) Totals() LineTotals {
	return LineTotals{
		TotalCost:    li.TotalCost,
		TotalPrice:   li.TotalPrice,
		WorkDuration: li.WorkDuration,
	}
}
