package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

// Categories of products that are manufactured in house
var manufacturedCategories = map[string]bool{
	"Elektronika":   true,
	"Strojírenství": true,
	"Chemie":        true,
	"Automotive":    true,
	"Textil":        true,
	"Stavebnictví":  true,
}

const (
	productionProductFallback    = 50
	productionCostCenterFallback = 10
	productionMaxStartOffset     = 900
	productionDefectShare        = 0.05
)

var productionStatus = patterns.NewChoice(
	patterns.W("Plánováno", 1),
	patterns.W("V výrobě", 2),
	patterns.W("Dokončeno", 3),
	patterns.W("Pozastaveno", 1),
	patterns.W("Zrušeno", 1),
)

// ProductionGenerator produces manufacturing orders for manufactured
// products on production cost centers.
type ProductionGenerator struct {
	rng         *utils.Random
	config      StreamConfig
	products    []models.Product
	costCenters []models.CostCenter
	material    *patterns.AmountDistribution
}

// NewProductionGenerator creates a new production generator. When no
// product or cost center qualifies, the first 50 products or first 10
// cost centers are used instead.
func NewProductionGenerator(rng *utils.Random, dims *Dimensions, config StreamConfig) *ProductionGenerator {
	return &ProductionGenerator{
		rng:    rng,
		config: config,
		products: restrictOrFallback(dims.Products, func(p models.Product) bool {
			return manufacturedCategories[p.Category]
		}, productionProductFallback),
		costCenters: restrictOrFallback(dims.CostCenters, func(c models.CostCenter) bool {
			return c.Type == models.CostCenterProduction
		}, productionCostCenterFallback),
		material: patterns.NewAmountRange(1000, 500000),
	}
}

// Generate streams all production orders into sink
func (g *ProductionGenerator) Generate(sink RowSink) error {
	return streamRows(sink, g.config.Count, g.config.ChunkSize, g.config.Progress, func(i int) models.Record {
		return g.order(i)
	})
}

func (g *ProductionGenerator) order(i int) models.ProductionOrder {
	maxOffset := min(productionMaxStartOffset, g.config.DateRange.Days()-1)
	start := g.config.DateRange.Day(g.rng.IntRange(0, maxOffset))
	end := start.AddDate(0, 0, g.rng.IntRange(1, 45))
	quantity := g.rng.IntRange(10, 5000)

	material := g.material.Generate(g.rng)
	labor := material.Mul(decimal.NewFromFloat(g.rng.Float64Range(0.2, 0.8))).Round(2)
	overhead := material.Add(labor).Mul(decimal.NewFromFloat(g.rng.Float64Range(0.05, 0.25))).Round(2)

	return models.ProductionOrder{
		ID:                  fmt.Sprintf("VZ%06d", i+1),
		ProductID:           utils.Pick(g.rng, g.products).ID,
		PlannedQuantity:     quantity,
		StartDate:           start,
		EndDate:             end,
		CostCenterID:        utils.Pick(g.rng, g.costCenters).ID,
		MaterialCost:        material,
		LaborCost:           labor,
		OverheadCost:        overhead,
		TotalCost:           material.Add(labor).Add(overhead).Round(2),
		Status:              productionStatus.Pick(g.rng),
		CapacityUtilization: utils.RoundTo(g.rng.Float64Range(0.85, 1.05), 3),
		Defects:             g.rng.IntRange(0, int(float64(quantity)*productionDefectShare)),
	}
}
