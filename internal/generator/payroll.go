package generator

import (
	"github.com/shopspring/decimal"

	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

// Contribution and tax rates as fractions of the base salary
var (
	employeeSocialRate = dec("0.065")
	employeeHealthRate = dec("0.045")
	employerSocialRate = dec("0.248")
	employerHealthRate = dec("0.09")
	incomeTaxRate      = dec("0.15")
	bonusNetShare      = dec("0.7")
)

const (
	bonusProbability = 0.2
	bonusMaxShare    = 0.15
)

// PayrollGenerator emits one pay slip per active employee per month of
// the date range.
type PayrollGenerator struct {
	rng       *utils.Random
	dims      *Dimensions
	dateRange patterns.DateRange
	chunkSize int
	progress  ProgressFunc
}

// NewPayrollGenerator creates a new payroll generator
func NewPayrollGenerator(rng *utils.Random, dims *Dimensions, config StreamConfig) *PayrollGenerator {
	return &PayrollGenerator{
		rng:       rng,
		dims:      dims,
		dateRange: config.DateRange,
		chunkSize: config.ChunkSize,
		progress:  config.Progress,
	}
}

// RowCount returns the number of rows Generate will emit
func (g *PayrollGenerator) RowCount() int {
	active := 0
	for _, e := range g.dims.Employees {
		if e.IsActive() {
			active++
		}
	}
	return active * len(g.dateRange.Months())
}

// Generate streams the payroll cross product into sink, employee-major
func (g *PayrollGenerator) Generate(sink RowSink) error {
	var active []models.Employee
	for _, e := range g.dims.Employees {
		if e.IsActive() {
			active = append(active, e)
		}
	}
	months := g.dateRange.Months()

	return streamRows(sink, len(active)*len(months), g.chunkSize, g.progress, func(i int) models.Record {
		return g.payslip(active[i/len(months)], patterns.Period(months[i%len(months)]))
	})
}

// payslip derives every amount from the base salary. Net pay adds 70 % of
// the bonus on top of the bonus-free net, so
// net + employee contributions + tax = base + 0.7 × bonus.
func (g *PayrollGenerator) payslip(e models.Employee, period string) models.Payroll {
	base := e.GrossSalary

	socialEmployee := base.Mul(employeeSocialRate).Round(2)
	healthEmployee := base.Mul(employeeHealthRate).Round(2)
	socialEmployer := base.Mul(employerSocialRate).Round(2)
	healthEmployer := base.Mul(employerHealthRate).Round(2)

	taxBase := base.Sub(socialEmployee).Sub(healthEmployee)
	tax := decimal.Max(decimal.Zero, taxBase.Mul(incomeTaxRate)).Round(2)
	net := taxBase.Sub(tax).Round(2)

	bonus := decimal.Zero.Round(2)
	if g.rng.Probability(bonusProbability) {
		bonus = utils.RandomAmount(g.rng, 0, base.InexactFloat64()*bonusMaxShare)
	}

	return models.Payroll{
		EmployeeID:        e.ID,
		CostCenterID:      e.CostCenterID,
		Period:            period,
		BaseSalary:        base,
		Bonus:             bonus,
		GrossTotal:        base.Add(bonus),
		EmployeeSocial:    socialEmployee,
		EmployeeHealth:    healthEmployee,
		EmployerSocial:    socialEmployer,
		EmployerHealth:    healthEmployer,
		IncomeTax:         tax,
		NetPay:            net.Add(bonus.Mul(bonusNetShare)).Round(2),
		EmployerTotalCost: base.Add(bonus).Add(socialEmployer).Add(healthEmployer).Round(2),
	}
}
