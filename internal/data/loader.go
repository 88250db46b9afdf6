package data

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed names/*.json addresses/*.json companies/*.json text/*.json domain/*.json
var dataFiles embed.FS

// DefaultLocale is the locale all identity data is generated in.
const DefaultLocale = "cs_CZ"

// ReferenceData holds all loaded reference data for the generator
type ReferenceData struct {
	FirstNames FirstNamesData
	LastNames  LastNamesData
	Addresses  AddressesData
	Companies  CompaniesData
	Phrases    PhrasesData
	Regions    RegionsData
	Accounts   AccountsData
}

// FirstNamesData represents the structure of first_names.json
type FirstNamesData struct {
	Locales map[string]LocaleNames `json:"locales"`
}

// LastNamesData represents the structure of last_names.json.
// Czech surnames are gendered, so both forms are listed in the same order.
type LastNamesData struct {
	Locales map[string]LocaleNames `json:"locales"`
}

// LocaleNames holds names for a specific locale
type LocaleNames struct {
	Countries []string `json:"countries"`
	Male      []string `json:"male"`
	Female    []string `json:"female"`
}

// AddressesData represents the structure of cities.json
type AddressesData struct {
	Locales map[string]LocaleAddresses `json:"locales"`
}

// LocaleAddresses holds city and street names for a locale
type LocaleAddresses struct {
	PostalFormat string   `json:"postal_format"`
	Cities       []string `json:"cities"`
	Streets      []string `json:"streets"`
}

// CompaniesData represents the structure of companies.json
type CompaniesData struct {
	Locales map[string]LocaleCompanies `json:"locales"`
}

// LocaleCompanies holds company name building blocks.
// Formats use {last}, {word} and {suffix} placeholders.
type LocaleCompanies struct {
	Suffixes []string `json:"suffixes"`
	Formats  []string `json:"formats"`
	Words    []string `json:"words"`
}

// PhrasesData represents the structure of phrases.json
type PhrasesData struct {
	Locales map[string]LocalePhrases `json:"locales"`
}

// LocalePhrases holds free-text vocabulary for a locale
type LocalePhrases struct {
	CatchPhrase  CatchPhraseParts `json:"catch_phrase"`
	Words        []string         `json:"words"`
	EmailDomains []string         `json:"email_domains"`
}

// CatchPhraseParts are combined as "<adjective> <noun> <attribute>"
type CatchPhraseParts struct {
	Adjectives []string `json:"adjectives"`
	Nouns      []string `json:"nouns"`
	Attributes []string `json:"attributes"`
}

// RegionsData represents the structure of regions.json
type RegionsData struct {
	Regions []Region `json:"regions"`
}

// Region is a sales region with the cities its branches sit in
type Region struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	BranchCities []string `json:"branch_cities"`
}

// AccountsData represents the structure of accounts.json
type AccountsData struct {
	Groups []AccountGroup `json:"groups"`
}

// AccountGroup is one range of the chart of accounts: Count consecutive
// numbers starting at Start, named by Template with {n} = 1..Count.
type AccountGroup struct {
	Start    int    `json:"start"`
	Count    int    `json:"count"`
	Class    string `json:"class"`
	Template string `json:"template"`
	Type     string `json:"type"`
	Group    string `json:"group"`
}

// Name renders the account name for the n-th (1-based) account in the group.
func (g AccountGroup) Name(n int) string {
	return strings.ReplaceAll(g.Template, "{n}", fmt.Sprint(n))
}

var (
	instance *ReferenceData
	once     sync.Once
	loadErr  error
)

// Load loads all reference data from embedded files
// This is thread-safe and will only load data once
func Load() (*ReferenceData, error) {
	once.Do(func() {
		instance = &ReferenceData{}
		loadErr = instance.loadAll()
	})

	if loadErr != nil {
		return nil, loadErr
	}
	return instance, nil
}

// loadAll loads all data files
func (r *ReferenceData) loadAll() error {
	files := []struct {
		path   string
		target any
	}{
		{"names/first_names.json", &r.FirstNames},
		{"names/last_names.json", &r.LastNames},
		{"addresses/cities.json", &r.Addresses},
		{"companies/companies.json", &r.Companies},
		{"text/phrases.json", &r.Phrases},
		{"domain/regions.json", &r.Regions},
		{"domain/accounts.json", &r.Accounts},
	}

	for _, f := range files {
		data, err := dataFiles.ReadFile(f.path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.path, err)
		}
		if err := json.Unmarshal(data, f.target); err != nil {
			return fmt.Errorf("failed to parse %s: %w", f.path, err)
		}
	}

	return r.validate()
}

// validate checks invariants the generators rely on
func (r *ReferenceData) validate() error {
	names, ok := r.LastNames.Locales[DefaultLocale]
	if !ok {
		return fmt.Errorf("no last names for locale %s", DefaultLocale)
	}
	if len(names.Male) != len(names.Female) {
		return fmt.Errorf("last names for %s: %d male forms but %d female forms",
			DefaultLocale, len(names.Male), len(names.Female))
	}

	seen := make(map[int]string)
	for _, g := range r.Accounts.Groups {
		for j := 0; j < g.Count; j++ {
			num := g.Start + j
			if prev, dup := seen[num]; dup {
				return fmt.Errorf("account %03d defined by both %q and %q", num, prev, g.Group)
			}
			seen[num] = g.Group
		}
	}

	return nil
}

// GetFirstNames returns first names for a locale and gender
func (r *ReferenceData) GetFirstNames(locale string, isMale bool) []string {
	if ln, ok := r.FirstNames.Locales[locale]; ok {
		if isMale {
			return ln.Male
		}
		return ln.Female
	}
	return nil
}

// GetLastNames returns last names for a locale and gender
func (r *ReferenceData) GetLastNames(locale string, isMale bool) []string {
	if ln, ok := r.LastNames.Locales[locale]; ok {
		if isMale {
			return ln.Male
		}
		return ln.Female
	}
	return nil
}

// GetAddresses returns city and street data for a locale
func (r *ReferenceData) GetAddresses(locale string) (LocaleAddresses, bool) {
	a, ok := r.Addresses.Locales[locale]
	return a, ok
}

// GetCompanies returns company name parts for a locale
func (r *ReferenceData) GetCompanies(locale string) (LocaleCompanies, bool) {
	c, ok := r.Companies.Locales[locale]
	return c, ok
}

// GetPhrases returns free-text vocabulary for a locale
func (r *ReferenceData) GetPhrases(locale string) (LocalePhrases, bool) {
	p, ok := r.Phrases.Locales[locale]
	return p, ok
}

// AllRegions returns the static region table in definition order
func (r *ReferenceData) AllRegions() []Region {
	return r.Regions.Regions
}

// AccountGroups returns the chart-of-accounts ranges in definition order
func (r *ReferenceData) AccountGroups() []AccountGroup {
	return r.Accounts.Groups
}

// AccountCount returns the number of accounts the chart expands to
func (r *ReferenceData) AccountCount() int {
	total := 0
	for _, g := range r.Accounts.Groups {
		total += g.Count
	}
	return total
}
