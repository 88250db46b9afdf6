package generator

import (
	"fmt"

	"github.com/willfong/fingen/internal/faker"
	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

const companyNameMaxLen = 50

var (
	customerSegment = patterns.Uniform("Enterprise", "SMB", "Retail", "Government", "Non-profit")
	customerStatus  = patterns.NewChoice(
		patterns.W("Aktivní", 8),
		patterns.W("Neaktivní", 1),
		patterns.W("Prospect", 1),
	)
	customerTerms = patterns.Uniform("NET30", "NET60", "NET90", "COD")
)

// CustomerGenerator creates corporate customers
type CustomerGenerator struct {
	rng   *utils.Random
	faker faker.Identity
	count int
}

// NewCustomerGenerator creates a new customer generator
func NewCustomerGenerator(rng *utils.Random, identity faker.Identity, count int) *CustomerGenerator {
	return &CustomerGenerator{rng: rng, faker: identity, count: count}
}

// Generate creates customers spread uniformly over regions
func (g *CustomerGenerator) Generate(regions []models.Region) []models.Customer {
	limit := patterns.NewAmountRange(10000, 5000000)

	customers := make([]models.Customer, g.count)
	for i := range customers {
		name := faker.Truncate(g.faker.CompanyName(), companyNameMaxLen)
		segment := customerSegment.Pick(g.rng)
		region := utils.Pick(g.rng, regions)
		address := g.faker.StreetAddress()
		city := g.faker.City()
		status := customerStatus.Pick(g.rng)

		customers[i] = models.Customer{
			ID:           fmt.Sprintf("CUS%04d", i+1),
			Name:         name,
			Segment:      segment,
			RegionID:     region.ID,
			Address:      address,
			City:         city,
			Status:       status,
			CreditLimit:  limit.Generate(g.rng),
			PaymentTerms: customerTerms.Pick(g.rng),
		}
	}
	return customers
}

var (
	supplierCategory = patterns.Uniform("Materiál", "Služby", "IT", "Logistika", "Energie", "Suroviny", "Údržba", "Marketing")
	supplierRating   = patterns.NewChoice(patterns.W("A", 2), patterns.W("B", 2), patterns.W("C", 1))
	supplierCountry  = patterns.NewChoice(
		patterns.W("CZ", 3),
		patterns.W("SK", 1),
		patterns.W("DE", 1),
		patterns.W("AT", 1),
	)
	supplierStatus = patterns.NewChoice(
		patterns.W("Aktivní", 8),
		patterns.W("Neaktivní", 1),
		patterns.W("Blokovaný", 1),
	)
	supplierTerms = patterns.Uniform("NET30", "NET45", "NET60", "Předem")
)

// SupplierGenerator creates suppliers
type SupplierGenerator struct {
	rng   *utils.Random
	faker faker.Identity
	count int
}

// NewSupplierGenerator creates a new supplier generator
func NewSupplierGenerator(rng *utils.Random, identity faker.Identity, count int) *SupplierGenerator {
	return &SupplierGenerator{rng: rng, faker: identity, count: count}
}

// Generate creates suppliers
func (g *SupplierGenerator) Generate() []models.Supplier {
	suppliers := make([]models.Supplier, g.count)
	for i := range suppliers {
		name := faker.Truncate(g.faker.CompanyName(), companyNameMaxLen)
		category := supplierCategory.Pick(g.rng)
		rating := supplierRating.Pick(g.rng)
		address := g.faker.StreetAddress()
		city := g.faker.City()

		suppliers[i] = models.Supplier{
			ID:           fmt.Sprintf("SUP%03d", i+1),
			Name:         name,
			Category:     category,
			Rating:       rating,
			Address:      address,
			City:         city,
			Country:      supplierCountry.Pick(g.rng),
			Status:       supplierStatus.Pick(g.rng),
			PaymentTerms: supplierTerms.Pick(g.rng),
		}
	}
	return suppliers
}
