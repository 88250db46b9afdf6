package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a row that can be projected onto its table's columns.
type Record interface {
	Record() []any
}

// CostCenterType is the functional taxonomy of cost centers
type CostCenterType string

const (
	CostCenterProduction CostCenterType = "Výroba"
	CostCenterSales      CostCenterType = "Obchod"
	CostCenterAdmin      CostCenterType = "Administrativa"
	CostCenterIT         CostCenterType = "IT"
	CostCenterLogistics  CostCenterType = "Logistika"
	CostCenterFinance    CostCenterType = "Finance"
	CostCenterMarketing  CostCenterType = "Marketing"
	CostCenterHR         CostCenterType = "HR"
	CostCenterQuality    CostCenterType = "Kvalita"
	CostCenterRnD        CostCenterType = "R&D"
)

// CostCenterTypes lists the taxonomy in the order cost centers cycle through it
var CostCenterTypes = []CostCenterType{
	CostCenterProduction, CostCenterSales, CostCenterAdmin, CostCenterIT, CostCenterLogistics,
	CostCenterFinance, CostCenterMarketing, CostCenterHR, CostCenterQuality, CostCenterRnD,
}

// Region is a sales/organizational region
type Region struct {
	ID      string `db:"region_id" json:"region_id"`
	Name    string `db:"region_nazev" json:"region_nazev"`
	Country string `db:"zeme" json:"zeme"` // ISO 3166-1 alpha-2
}

// RegionColumns is the column order of dim_regiony
var RegionColumns = []string{"region_id", "region_nazev", "zeme"}

func (r Region) Record() []any {
	return []any{r.ID, r.Name, r.Country}
}

// Branch is an office located in one region
type Branch struct {
	ID       string `db:"pobocka_id" json:"pobocka_id"`
	Name     string `db:"pobocka_nazev" json:"pobocka_nazev"`
	Address  string `db:"adresa" json:"adresa"`
	City     string `db:"mesto" json:"mesto"`
	RegionID string `db:"region_id" json:"region_id"`
	Status   string `db:"stav" json:"stav"`
}

// BranchColumns is the column order of dim_pobocky
var BranchColumns = []string{"pobocka_id", "pobocka_nazev", "adresa", "mesto", "region_id", "stav"}

func (b Branch) Record() []any {
	return []any{b.ID, b.Name, b.Address, b.City, b.RegionID, b.Status}
}

// CostCenter is a node of the cost-center forest. Index is the generation
// order; a parent always has a smaller Index than its children.
type CostCenter struct {
	Index       int            `db:"-" json:"-"`
	ID          string         `db:"stredisko_id" json:"stredisko_id"`
	Name        string         `db:"stredisko_nazev" json:"stredisko_nazev"`
	Type        CostCenterType `db:"typ" json:"typ"`
	ParentID    string         `db:"nadrazene_stredisko" json:"nadrazene_stredisko"` // empty for roots
	ParentIndex int            `db:"-" json:"-"`                                     // -1 for roots
	BranchID    string         `db:"pobocka_id" json:"pobocka_id"`
	Status      string         `db:"stav" json:"stav"`
}

// CostCenterColumns is the column order of dim_strediska
var CostCenterColumns = []string{"stredisko_id", "stredisko_nazev", "typ", "nadrazene_stredisko", "pobocka_id", "stav"}

func (c CostCenter) Record() []any {
	return []any{c.ID, c.Name, string(c.Type), c.ParentID, c.BranchID, c.Status}
}

// HasParent reports whether the cost center has a parent
func (c CostCenter) HasParent() bool {
	return c.ParentIndex >= 0
}

// ProfitCenter is evaluated on both revenue and cost
type ProfitCenter struct {
	ID           string          `db:"profit_centrum_id" json:"profit_centrum_id"`
	Name         string          `db:"nazev" json:"nazev"`
	RegionID     string          `db:"region_id" json:"region_id"`
	Manager      string          `db:"manazer" json:"manazer"`
	Status       string          `db:"stav" json:"stav"`
	AnnualTarget decimal.Decimal `db:"rocni_cil" json:"rocni_cil"`
}

// ProfitCenterColumns is the column order of dim_profit_centra
var ProfitCenterColumns = []string{"profit_centrum_id", "nazev", "region_id", "manazer", "stav", "rocni_cil"}

func (p ProfitCenter) Record() []any {
	return []any{p.ID, p.Name, p.RegionID, p.Manager, p.Status, p.AnnualTarget}
}

// Project is a time-boxed initiative with its own budget
type Project struct {
	ID        string          `db:"projekt_id" json:"projekt_id"`
	Name      string          `db:"projekt_nazev" json:"projekt_nazev"`
	Status    string          `db:"stav" json:"stav"`
	Budget    decimal.Decimal `db:"rozpocet" json:"rozpocet"`
	StartDate time.Time       `db:"datum_zahajeni" json:"datum_zahajeni"`
	EndDate   time.Time       `db:"datum_ukonceni" json:"datum_ukonceni"`
	Type      string          `db:"typ" json:"typ"`
}

// ProjectColumns is the column order of dim_projekty
var ProjectColumns = []string{"projekt_id", "projekt_nazev", "stav", "rozpocet", "datum_zahajeni", "datum_ukonceni", "typ"}

func (p Project) Record() []any {
	return []any{p.ID, p.Name, p.Status, p.Budget, p.StartDate, p.EndDate, p.Type}
}
