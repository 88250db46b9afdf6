package generator

import (
	"fmt"

	"github.com/willfong/fingen/internal/data"
	"github.com/willfong/fingen/internal/models"
	"github.com/willfong/fingen/internal/utils"
)

// AccountGenerator expands the chart of accounts from its group table.
// The status column is the only randomized value.
type AccountGenerator struct {
	rng     *utils.Random
	refData *data.ReferenceData
}

// NewAccountGenerator creates a new account generator
func NewAccountGenerator(rng *utils.Random, refData *data.ReferenceData) *AccountGenerator {
	return &AccountGenerator{rng: rng, refData: refData}
}

// Generate returns one account per number of every group, in group order
func (g *AccountGenerator) Generate() []models.Account {
	accounts := make([]models.Account, 0, g.refData.AccountCount())
	for _, group := range g.refData.AccountGroups() {
		for j := 0; j < group.Count; j++ {
			accounts = append(accounts, models.Account{
				Number: fmt.Sprintf("%03d", group.Start+j),
				Name:   group.Name(j + 1),
				Type:   models.AccountType(group.Type),
				Group:  group.Group,
				Class:  group.Class,
				Status: activeStatus.Pick(g.rng),
			})
		}
	}
	return accounts
}
