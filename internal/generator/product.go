package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/willfong/fingen/internal/faker"
	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

var (
	productCategory = patterns.Uniform(
		"Elektronika", "Strojírenství", "Software", "Služby", "Chemie",
		"Potraviny", "Textil", "Stavebnictví", "Automotive", "Energie",
	)
	productUnit   = patterns.Uniform("ks", "kg", "l", "m", "hod", "bal")
	productStatus = patterns.NewChoice(
		patterns.W("Aktivní", 8),
		patterns.W("Ukončený", 1),
		patterns.W("Plánovaný", 1),
	)
)

// A margin of at least 10 % on a price of at least 50 keeps the cost
// price at least 5 below the sell price, well clear of rounding.
const (
	productPriceMin   = 50
	productPriceMax   = 50000
	productMarginMin  = 0.1
	productMarginMax  = 0.6
	productNameMaxLen = 40
)

// ProductGenerator creates the product catalog
type ProductGenerator struct {
	rng   *utils.Random
	faker faker.Identity
	count int
}

// NewProductGenerator creates a new product generator
func NewProductGenerator(rng *utils.Random, identity faker.Identity, count int) *ProductGenerator {
	return &ProductGenerator{rng: rng, faker: identity, count: count}
}

// Generate creates products whose cost price is always below the sell price
func (g *ProductGenerator) Generate() []models.Product {
	price := patterns.NewAmountRange(productPriceMin, productPriceMax)

	products := make([]models.Product, g.count)
	for i := range products {
		name := g.faker.CatchPhrase(productNameMaxLen)
		category := productCategory.Pick(g.rng)
		sell := price.Generate(g.rng)
		margin := g.rng.Float64Range(productMarginMin, productMarginMax)
		cost := sell.Mul(decimal.NewFromFloat(1 - margin)).Round(2)

		products[i] = models.Product{
			ID:        fmt.Sprintf("PRD%04d", i+1),
			Name:      name,
			Category:  category,
			SellPrice: sell,
			CostPrice: cost,
			Unit:      productUnit.Pick(g.rng),
			Status:    productStatus.Pick(g.rng),
		}
	}
	return products
}
