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
	employeePosition = patterns.Uniform(
		"Analytik", "Účetní", "Manažer", "Technik", "Operátor", "Obchodník", "Programátor",
		"Ředitel", "Asistent", "Koordinátor", "Správce", "Specialista", "Konzultant", "Inženýr", "Dispečer",
	)
	employeeStatus = patterns.NewChoice(
		patterns.W(models.EmployeeStatusActive, 9),
		patterns.W("Neaktivní", 1),
	)
	employeeContract = patterns.NewChoice(
		patterns.W("Plný úvazek", 8),
		patterns.W("Částečný úvazek", 1),
		patterns.W("DPP", 1),
	)
)

// Hire dates are offset from the start of the range; negative offsets
// mean the employee joined before the dataset begins.
const (
	hireMinOffset = -1500
	hireMaxOffset = 800

	salaryMin = 28000
	salaryMax = 120000
)

// EmployeeGenerator creates employees assigned to cost centers
type EmployeeGenerator struct {
	rng       *utils.Random
	faker     faker.Identity
	count     int
	dateRange patterns.DateRange
}

// NewEmployeeGenerator creates a new employee generator
func NewEmployeeGenerator(rng *utils.Random, identity faker.Identity, count int, dateRange patterns.DateRange) *EmployeeGenerator {
	return &EmployeeGenerator{rng: rng, faker: identity, count: count, dateRange: dateRange}
}

// Generate creates employees. The e-mail is derived from the employee's
// own name so both columns stay consistent.
func (g *EmployeeGenerator) Generate(costCenters []models.CostCenter) []models.Employee {
	employees := make([]models.Employee, g.count)
	for i := range employees {
		person := g.faker.Person()
		center := utils.Pick(g.rng, costCenters)
		position := employeePosition.Pick(g.rng)
		salary := decimal.NewFromFloat(g.rng.Float64Range(salaryMin, salaryMax)).Round(0)
		hired := g.dateRange.Day(g.rng.IntRange(hireMinOffset, hireMaxOffset))
		status := employeeStatus.Pick(g.rng)
		contract := employeeContract.Pick(g.rng)

		employees[i] = models.Employee{
			ID:           fmt.Sprintf("EMP%04d", i+1),
			FirstName:    person.FirstName,
			LastName:     person.LastName,
			CostCenterID: center.ID,
			Position:     position,
			GrossSalary:  salary,
			HireDate:     hired,
			Status:       status,
			ContractType: contract,
			Email:        g.faker.Email(person.FirstName, person.LastName),
		}
	}
	return employees
}
