package data

import (
	"testing"
)

func TestLoadReferenceData(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("Failed to load reference data: %v", err)
	}

	t.Run("GetFirstNames", func(t *testing.T) {
		if len(data.GetFirstNames(DefaultLocale, true)) == 0 {
			t.Error("Expected male first names for cs_CZ, got none")
		}
		if len(data.GetFirstNames(DefaultLocale, false)) == 0 {
			t.Error("Expected female first names for cs_CZ, got none")
		}
		if names := data.GetFirstNames("xx_XX", true); names != nil {
			t.Errorf("Expected no names for unknown locale, got %d", len(names))
		}
	})

	t.Run("GetLastNames gendered pairs", func(t *testing.T) {
		male := data.GetLastNames(DefaultLocale, true)
		female := data.GetLastNames(DefaultLocale, false)
		if len(male) == 0 {
			t.Fatal("Expected last names for cs_CZ, got none")
		}
		if len(male) != len(female) {
			t.Fatalf("Expected paired surname lists, got %d male and %d female", len(male), len(female))
		}
		if male[0] != "Novák" || female[0] != "Nováková" {
			t.Errorf("Expected Novák/Nováková as first pair, got %s/%s", male[0], female[0])
		}
	})

	t.Run("GetAddresses", func(t *testing.T) {
		a, ok := data.GetAddresses(DefaultLocale)
		if !ok {
			t.Fatal("Failed to find addresses for cs_CZ")
		}
		if len(a.Cities) == 0 || len(a.Streets) == 0 {
			t.Errorf("Expected cities and streets, got %d and %d", len(a.Cities), len(a.Streets))
		}
	})

	t.Run("GetCompanies", func(t *testing.T) {
		c, ok := data.GetCompanies(DefaultLocale)
		if !ok {
			t.Fatal("Failed to find company data for cs_CZ")
		}
		if len(c.Suffixes) == 0 || len(c.Formats) == 0 {
			t.Error("Expected company suffixes and formats")
		}
	})

	t.Run("GetPhrases", func(t *testing.T) {
		p, ok := data.GetPhrases(DefaultLocale)
		if !ok {
			t.Fatal("Failed to find phrases for cs_CZ")
		}
		if len(p.CatchPhrase.Adjectives) == 0 || len(p.Words) == 0 || len(p.EmailDomains) == 0 {
			t.Error("Expected catch phrase parts, words and e-mail domains")
		}
	})
}

func TestRegions(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("Failed to load reference data: %v", err)
	}

	regions := data.AllRegions()
	if len(regions) != 10 {
		t.Fatalf("Expected 10 regions, got %d", len(regions))
	}

	countries := map[string]string{"REG01": "CZ", "REG09": "SK", "REG10": "AT"}
	for _, r := range regions {
		if want, ok := countries[r.ID]; ok && r.Country != want {
			t.Errorf("Region %s: expected country %s, got %s", r.ID, want, r.Country)
		}
		if len(r.BranchCities) != 3 {
			t.Errorf("Region %s: expected 3 branch cities, got %d", r.ID, len(r.BranchCities))
		}
	}
}

func TestAccountChart(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("Failed to load reference data: %v", err)
	}

	if got := data.AccountCount(); got != 147 {
		t.Errorf("Expected chart of 147 accounts, got %d", got)
	}

	types := map[string]bool{"Aktiva": true, "Pasiva": true, "Náklady": true, "Výnosy": true}
	for _, g := range data.AccountGroups() {
		if !types[g.Type] {
			t.Errorf("Group %q has unknown type %q", g.Group, g.Type)
		}
		if g.Count <= 0 {
			t.Errorf("Group %q has non-positive count %d", g.Group, g.Count)
		}
	}

	t.Run("groups shortened to avoid overlap", func(t *testing.T) {
		want := map[int]int{341: 2, 601: 1, 602: 2}
		for _, g := range data.AccountGroups() {
			if n, ok := want[g.Start]; ok && g.Count != n {
				t.Errorf("Group %d (%s) has %d accounts, expected %d", g.Start, g.Group, g.Count, n)
			}
		}
	})

	t.Run("Name", func(t *testing.T) {
		g := AccountGroup{Template: "Pokladna {n}"}
		if got := g.Name(2); got != "Pokladna 2" {
			t.Errorf("Expected 'Pokladna 2', got %q", got)
		}
	})

	t.Run("validate rejects overlapping ranges", func(t *testing.T) {
		r := &ReferenceData{
			LastNames: data.LastNames,
			Accounts: AccountsData{Groups: []AccountGroup{
				{Start: 341, Count: 3, Group: "Daně"},
				{Start: 343, Count: 2, Group: "DPH"},
			}},
		}
		if err := r.validate(); err == nil {
			t.Error("Expected an error for overlapping account ranges")
		}
	})
}
