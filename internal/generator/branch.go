package generator

import (
	"fmt"

	"github.com/willfong/fingen/internal/data"
	"github.com/willfong/fingen/internal/faker"
	"github.com/willfong/fingen/internal/generator/patterns"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

// RegionGenerator emits the static region table.
type RegionGenerator struct {
	refData *data.ReferenceData
}

// NewRegionGenerator creates a new region generator
func NewRegionGenerator(refData *data.ReferenceData) *RegionGenerator {
	return &RegionGenerator{refData: refData}
}

// Generate returns the regions in definition order
func (g *RegionGenerator) Generate() []models.Region {
	regions := make([]models.Region, 0, len(g.refData.AllRegions()))
	for _, r := range g.refData.AllRegions() {
		regions = append(regions, models.Region{ID: r.ID, Name: r.Name, Country: r.Country})
	}
	return regions
}

// BranchGenerator creates one branch per city of every region's fixed
// city list.
type BranchGenerator struct {
	rng     *utils.Random
	faker   faker.Identity
	refData *data.ReferenceData
}

var branchStatus = patterns.NewChoice(patterns.W("aktivní", 3), patterns.W("plánovaná", 1))

// NewBranchGenerator creates a new branch generator
func NewBranchGenerator(rng *utils.Random, identity faker.Identity, refData *data.ReferenceData) *BranchGenerator {
	return &BranchGenerator{rng: rng, faker: identity, refData: refData}
}

// Generate creates branches for the given regions. Regions missing from
// the reference city lists get no branches, and reference regions that
// are not in regions are skipped, so every branch references an
// existing region.
func (g *BranchGenerator) Generate(regions []models.Region) []models.Branch {
	present := make(map[string]bool, len(regions))
	for _, r := range regions {
		present[r.ID] = true
	}

	var branches []models.Branch
	for _, region := range g.refData.AllRegions() {
		if !present[region.ID] {
			continue
		}
		for _, city := range region.BranchCities {
			branches = append(branches, models.Branch{
				ID:       fmt.Sprintf("POB%02d", len(branches)+1),
				Name:     "Pobočka " + city,
				Address:  g.faker.StreetAddress(),
				City:     city,
				RegionID: region.ID,
				Status:   branchStatus.Pick(g.rng),
			})
		}
	}
	return branches
}
