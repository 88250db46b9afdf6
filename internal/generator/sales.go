package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

var (
	saleDiscount = patterns.NewChoice(
		patterns.W(dec("0.00"), 4),
		patterns.W(dec("0.05"), 1),
		patterns.W(dec("0.10"), 1),
		patterns.W(dec("0.15"), 1),
		patterns.W(dec("0.20"), 1),
	)
	saleVAT           = patterns.Uniform(decimals("0.21", "0.15", "0.10")...)
	saleChannel       = patterns.Uniform("E-shop", "Pobočka", "Telefon", "B2B portál", "Obchodní zástupce")
	salePaymentStatus = patterns.NewChoice(
		patterns.W("Zaplaceno", 3),
		patterns.W("Nezaplaceno", 1),
		patterns.W("Částečně", 1),
		patterns.W("Storno", 1),
	)
	saleCurrency = patterns.NewChoice(patterns.W("CZK", 85), patterns.W("EUR", 15))
)

// SalesGenerator produces invoice lines priced from the product catalog
type SalesGenerator struct {
	rng    *utils.Random
	dims   *Dimensions
	config StreamConfig
	dates  *patterns.SeasonalSampler
}

// NewSalesGenerator creates a new sales generator
func NewSalesGenerator(rng *utils.Random, dims *Dimensions, config StreamConfig) *SalesGenerator {
	return &SalesGenerator{
		rng:    rng,
		dims:   dims,
		config: config,
		dates:  patterns.NewSeasonalSampler(config.DateRange, patterns.NewQuarterlyPattern()),
	}
}

// Generate streams all sales into sink
func (g *SalesGenerator) Generate(sink RowSink) error {
	return streamRows(sink, g.config.Count, g.config.ChunkSize, g.config.Progress, func(i int) models.Record {
		return g.sale(i)
	})
}

func (g *SalesGenerator) sale(i int) models.Sale {
	date := g.dates.Sample(g.rng)
	product := utils.Pick(g.rng, g.dims.Products)
	quantity := g.rng.IntRange(1, 100)
	discount := saleDiscount.Pick(g.rng)
	vatRate := saleVAT.Pick(g.rng)

	q := decimal.NewFromInt(int64(quantity))
	net := q.Mul(product.SellPrice).Mul(one.Sub(discount)).Round(2)
	vat, gross := vatAmounts(net, vatRate)

	return models.Sale{
		ID:              fmt.Sprintf("FAV%07d", i+1),
		Date:            date,
		CustomerID:      utils.Pick(g.rng, g.dims.Customers).ID,
		ProductID:       product.ID,
		Quantity:        quantity,
		UnitPrice:       product.SellPrice,
		DiscountPercent: discount,
		NetTotal:        net,
		VATRate:         vatRate,
		VATAmount:       vat,
		GrossTotal:      gross,
		CostOfGoods:     q.Mul(product.CostPrice).Round(2),
		BranchID:        utils.Pick(g.rng, g.dims.Branches).ID,
		Channel:         saleChannel.Pick(g.rng),
		PaymentStatus:   salePaymentStatus.Pick(g.rng),
		Currency:        saleCurrency.Pick(g.rng),
	}
}

var (
	purchaseItemType = patterns.Uniform(
		"Materiál", "Služba", "Energie", "Náhradní díly", "Kancelářské potřeby",
		"IT vybavení", "Software licence", "Doprava", "Údržba", "Suroviny",
	)
	purchaseVAT    = patterns.Uniform(decimals("0.21", "0.15", "0.10", "0.00")...)
	purchaseStatus = patterns.NewChoice(
		patterns.W("Schváleno", 2),
		patterns.W("Přijato", 1),
		patterns.W("Částečně přijato", 1),
		patterns.W("Reklamace", 1),
		patterns.W("Koncept", 1),
	)
	purchaseCurrency = patterns.NewChoice(
		patterns.W("CZK", 85),
		patterns.W("EUR", 10),
		patterns.W("USD", 5),
	)
)

// PurchaseGenerator produces purchase order lines. Order dates are
// uniform over the range, not seasonal.
type PurchaseGenerator struct {
	rng       *utils.Random
	dims      *Dimensions
	config    StreamConfig
	unitPrice *patterns.AmountDistribution
}

// NewPurchaseGenerator creates a new purchase generator
func NewPurchaseGenerator(rng *utils.Random, dims *Dimensions, config StreamConfig) *PurchaseGenerator {
	return &PurchaseGenerator{
		rng:       rng,
		dims:      dims,
		config:    config,
		unitPrice: patterns.NewAmountRange(20, 25000),
	}
}

// Generate streams all purchases into sink
func (g *PurchaseGenerator) Generate(sink RowSink) error {
	return streamRows(sink, g.config.Count, g.config.ChunkSize, g.config.Progress, func(i int) models.Record {
		return g.purchase(i)
	})
}

func (g *PurchaseGenerator) purchase(i int) models.Purchase {
	date := patterns.UniformDate(g.rng, g.config.DateRange)
	supplier := utils.Pick(g.rng, g.dims.Suppliers)
	itemType := purchaseItemType.Pick(g.rng)
	quantity := g.rng.IntRange(1, 500)
	price := g.unitPrice.Generate(g.rng)
	vatRate := purchaseVAT.Pick(g.rng)

	net := decimal.NewFromInt(int64(quantity)).Mul(price).Round(2)
	vat, gross := vatAmounts(net, vatRate)

	return models.Purchase{
		ID:           fmt.Sprintf("OBJ%06d", i+1),
		Date:         date,
		SupplierID:   supplier.ID,
		ItemType:     itemType,
		Quantity:     quantity,
		UnitPrice:    price,
		NetTotal:     net,
		VATRate:      vatRate,
		VATAmount:    vat,
		GrossTotal:   gross,
		CostCenterID: utils.Pick(g.rng, g.dims.CostCenters).ID,
		Status:       purchaseStatus.Pick(g.rng),
		Currency:     purchaseCurrency.Pick(g.rng),
	}
}
