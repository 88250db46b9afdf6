package generator

import (
	"fmt"

	"github.com/willfong/fingen/internal/faker"
	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

// CostCenterGenerator builds the cost-center forest.
type CostCenterGenerator struct {
	rng   *utils.Random
	count int
}

// NewCostCenterGenerator creates a new cost center generator
func NewCostCenterGenerator(rng *utils.Random, count int) *CostCenterGenerator {
	return &CostCenterGenerator{rng: rng, count: count}
}

// Generate creates cost centers. Types cycle through the taxonomy; every
// center after the first gets a parent drawn from the centers before it,
// so the hierarchy has no cycles.
func (g *CostCenterGenerator) Generate(branches []models.Branch) []models.CostCenter {
	centers := make([]models.CostCenter, g.count)
	for i := range centers {
		typ := models.CostCenterTypes[i%len(models.CostCenterTypes)]

		parent := -1
		if i > 0 {
			parent = g.rng.IntN(i)
		}

		centers[i] = models.CostCenter{
			Index:       i,
			ID:          fmt.Sprintf("STR%03d", i+1),
			Name:        fmt.Sprintf("%s - oddělení %d", typ, i+1),
			Type:        typ,
			ParentIndex: parent,
			BranchID:    utils.Pick(g.rng, branches).ID,
			Status:      activeStatus.Pick(g.rng),
		}
		if parent >= 0 {
			centers[i].ParentID = centers[parent].ID
		}
	}
	return centers
}

var profitCenterNames = []string{
	"Retail CZ", "Wholesale CZ", "E-commerce", "B2B International", "Services CZ",
	"Retail SK", "Manufacturing", "Consulting", "Logistics", "Financial Services",
	"IT Solutions", "Custom Products", "Maintenance", "After-sales", "Export EU",
	"Government", "Energy", "Healthcare", "Automotive", "Ostatní",
}

// ProfitCenterName returns the i-th (0-based) profit center name. Names
// repeat with a numeric suffix once the fixed list is exhausted.
func ProfitCenterName(i int) string {
	name := profitCenterNames[i%len(profitCenterNames)]
	if round := i / len(profitCenterNames); round > 0 {
		return fmt.Sprintf("%s %d", name, round+1)
	}
	return name
}

// ProfitCenterGenerator creates profit centers
type ProfitCenterGenerator struct {
	rng   *utils.Random
	faker faker.Identity
	count int
}

// NewProfitCenterGenerator creates a new profit center generator
func NewProfitCenterGenerator(rng *utils.Random, identity faker.Identity, count int) *ProfitCenterGenerator {
	return &ProfitCenterGenerator{rng: rng, faker: identity, count: count}
}

// Generate creates profit centers spread uniformly over regions
func (g *ProfitCenterGenerator) Generate(regions []models.Region) []models.ProfitCenter {
	target := patterns.NewAmountRange(500000, 50000000)

	centers := make([]models.ProfitCenter, g.count)
	for i := range centers {
		centers[i] = models.ProfitCenter{
			ID:           fmt.Sprintf("PC%02d", i+1),
			Name:         ProfitCenterName(i),
			RegionID:     utils.Pick(g.rng, regions).ID,
			Manager:      g.faker.FullName(),
			Status:       activeStatus.Pick(g.rng),
			AnnualTarget: target.Generate(g.rng),
		}
	}
	return centers
}

var (
	projectStatus = patterns.NewChoice(
		patterns.W("Plánovaný", 1),
		patterns.W("Aktivní", 3),
		patterns.W("Pozastavený", 1),
		patterns.W("Dokončený", 1),
		patterns.W("Zrušený", 1),
	)
	projectType = patterns.Uniform("Interní", "Zákaznický", "R&D", "Investiční", "Údržba")
)

const (
	projectMaxStartOffset = 800
	projectMinDuration    = 30
	projectMaxDuration    = 730
	projectNameMaxLen     = 50
)

// ProjectGenerator creates projects with budgets and lifetimes
type ProjectGenerator struct {
	rng       *utils.Random
	faker     faker.Identity
	count     int
	dateRange patterns.DateRange
}

// NewProjectGenerator creates a new project generator
func NewProjectGenerator(rng *utils.Random, identity faker.Identity, count int, dateRange patterns.DateRange) *ProjectGenerator {
	return &ProjectGenerator{rng: rng, faker: identity, count: count, dateRange: dateRange}
}

// Generate creates projects. Start dates fall inside the date range and
// every project ends at least 30 days after it starts.
func (g *ProjectGenerator) Generate() []models.Project {
	budget := patterns.NewAmountRange(50000, 5000000)
	maxOffset := min(projectMaxStartOffset, g.dateRange.Days()-1)

	projects := make([]models.Project, g.count)
	for i := range projects {
		name := g.faker.CatchPhrase(projectNameMaxLen)
		status := projectStatus.Pick(g.rng)
		amount := budget.Generate(g.rng)
		start := g.dateRange.Day(g.rng.IntRange(0, maxOffset))
		end := start.AddDate(0, 0, g.rng.IntRange(projectMinDuration, projectMaxDuration))

		projects[i] = models.Project{
			ID:        fmt.Sprintf("PROJ%03d", i+1),
			Name:      name,
			Status:    status,
			Budget:    amount,
			StartDate: start,
			EndDate:   end,
			Type:      projectType.Pick(g.rng),
		}
	}
	return projects
}
