package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeStatusActive marks employees included in payroll
const EmployeeStatusActive = "Aktivní"

// Employee is a member of staff assigned to a cost center
type Employee struct {
	ID           string          `db:"zamestnanec_id" json:"zamestnanec_id"`
	FirstName    string          `db:"jmeno" json:"jmeno"`
	LastName     string          `db:"prijmeni" json:"prijmeni"`
	CostCenterID string          `db:"stredisko_id" json:"stredisko_id"`
	Position     string          `db:"pozice" json:"pozice"`
	GrossSalary  decimal.Decimal `db:"hruba_mzda" json:"hruba_mzda"` // monthly, whole crowns
	HireDate     time.Time       `db:"datum_nastupu" json:"datum_nastupu"`
	Status       string          `db:"stav" json:"stav"`
	ContractType string          `db:"typ_uvazku" json:"typ_uvazku"`
	Email        string          `db:"email" json:"email"`
}

// EmployeeColumns is the column order of dim_zamestnanci
var EmployeeColumns = []string{
	"zamestnanec_id", "jmeno", "prijmeni", "stredisko_id", "pozice",
	"hruba_mzda", "datum_nastupu", "stav", "typ_uvazku", "email",
}

func (e Employee) Record() []any {
	return []any{
		e.ID, e.FirstName, e.LastName, e.CostCenterID, e.Position,
		e.GrossSalary, e.HireDate, e.Status, e.ContractType, e.Email,
	}
}

// IsActive reports whether the employee is currently employed
func (e Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// Product is a sellable item. CostPrice is always below SellPrice.
type Product struct {
	ID        string          `db:"produkt_id" json:"produkt_id"`
	Name      string          `db:"produkt_nazev" json:"produkt_nazev"`
	Category  string          `db:"kategorie" json:"kategorie"`
	SellPrice decimal.Decimal `db:"prodejni_cena" json:"prodejni_cena"`
	CostPrice decimal.Decimal `db:"nakladova_cena" json:"nakladova_cena"`
	Unit      string          `db:"jednotka" json:"jednotka"`
	Status    string          `db:"stav" json:"stav"`
}

// ProductColumns is the column order of dim_produkty
var ProductColumns = []string{"produkt_id", "produkt_nazev", "kategorie", "prodejni_cena", "nakladova_cena", "jednotka", "stav"}

func (p Product) Record() []any {
	return []any{p.ID, p.Name, p.Category, p.SellPrice, p.CostPrice, p.Unit, p.Status}
}

// Customer is a company buying from us
type Customer struct {
	ID           string          `db:"zakaznik_id" json:"zakaznik_id"`
	Name         string          `db:"zakaznik_nazev" json:"zakaznik_nazev"`
	Segment      string          `db:"segment" json:"segment"`
	RegionID     string          `db:"region_id" json:"region_id"`
	Address      string          `db:"adresa" json:"adresa"`
	City         string          `db:"mesto" json:"mesto"`
	Status       string          `db:"stav" json:"stav"`
	CreditLimit  decimal.Decimal `db:"kreditni_limit" json:"kreditni_limit"`
	PaymentTerms string          `db:"platebni_podminky" json:"platebni_podminky"`
}

// CustomerColumns is the column order of dim_zakaznici
var CustomerColumns = []string{
	"zakaznik_id", "zakaznik_nazev", "segment", "region_id",
	"adresa", "mesto", "stav", "kreditni_limit", "platebni_podminky",
}

func (c Customer) Record() []any {
	return []any{c.ID, c.Name, c.Segment, c.RegionID, c.Address, c.City, c.Status, c.CreditLimit, c.PaymentTerms}
}

// Supplier is a company we buy from
type Supplier struct {
	ID           string `db:"dodavatel_id" json:"dodavatel_id"`
	Name         string `db:"dodavatel_nazev" json:"dodavatel_nazev"`
	Category     string `db:"kategorie" json:"kategorie"`
	Rating       string `db:"hodnoceni" json:"hodnoceni"` // A, B or C
	Address      string `db:"adresa" json:"adresa"`
	City         string `db:"mesto" json:"mesto"`
	Country      string `db:"zeme" json:"zeme"`
	Status       string `db:"stav" json:"stav"`
	PaymentTerms string `db:"platebni_podminky" json:"platebni_podminky"`
}

// SupplierColumns is the column order of dim_dodavatele
var SupplierColumns = []string{
	"dodavatel_id", "dodavatel_nazev", "kategorie", "hodnoceni",
	"adresa", "mesto", "zeme", "stav", "platebni_podminky",
}

func (s Supplier) Record() []any {
	return []any{s.ID, s.Name, s.Category, s.Rating, s.Address, s.City, s.Country, s.Status, s.PaymentTerms}
}
