package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one employee's pay slip for one month
type Payroll struct {
	EmployeeID        string          `db:"zamestnanec_id" json:"zamestnanec_id"`
	CostCenterID      string          `db:"stredisko_id" json:"stredisko_id"`
	Period            string          `db:"obdobi" json:"obdobi"` // YYYY-MM
	BaseSalary        decimal.Decimal `db:"zakladni_mzda" json:"zakladni_mzda"`
	Bonus             decimal.Decimal `db:"odmeny" json:"odmeny"`
	GrossTotal        decimal.Decimal `db:"hruba_mzda_celkem" json:"hruba_mzda_celkem"`
	EmployeeSocial    decimal.Decimal `db:"soc_pojisteni_zam" json:"soc_pojisteni_zam"`
	EmployeeHealth    decimal.Decimal `db:"zdr_pojisteni_zam" json:"zdr_pojisteni_zam"`
	EmployerSocial    decimal.Decimal `db:"soc_pojisteni_firma" json:"soc_pojisteni_firma"`
	EmployerHealth    decimal.Decimal `db:"zdr_pojisteni_firma" json:"zdr_pojisteni_firma"`
	IncomeTax         decimal.Decimal `db:"dan_z_prijmu" json:"dan_z_prijmu"`
	NetPay            decimal.Decimal `db:"cista_mzda" json:"cista_mzda"`
	EmployerTotalCost decimal.Decimal `db:"celkove_naklady_firma" json:"celkove_naklady_firma"`
}

// PayrollColumns is the column order of fact_mzdy
var PayrollColumns = []string{
	"zamestnanec_id", "stredisko_id", "obdobi", "zakladni_mzda", "odmeny", "hruba_mzda_celkem",
	"soc_pojisteni_zam", "zdr_pojisteni_zam", "soc_pojisteni_firma", "zdr_pojisteni_firma",
	"dan_z_prijmu", "cista_mzda", "celkove_naklady_firma",
}

func (p Payroll) Record() []any {
	return []any{
		p.EmployeeID, p.CostCenterID, p.Period, p.BaseSalary, p.Bonus, p.GrossTotal,
		p.EmployeeSocial, p.EmployeeHealth, p.EmployerSocial, p.EmployerHealth,
		p.IncomeTax, p.NetPay, p.EmployerTotalCost,
	}
}

// Sale is an issued invoice line
type Sale struct {
	ID              string          `db:"faktura_id" json:"faktura_id"`
	Date            time.Time       `db:"datum" json:"datum"`
	CustomerID      string          `db:"zakaznik_id" json:"zakaznik_id"`
	ProductID       string          `db:"produkt_id" json:"produkt_id"`
	Quantity        int             `db:"mnozstvi" json:"mnozstvi"`
	UnitPrice       decimal.Decimal `db:"jednotkova_cena" json:"jednotkova_cena"`
	DiscountPercent decimal.Decimal `db:"sleva_pct" json:"sleva_pct"` // fraction, 0.15 = 15 %
	NetTotal        decimal.Decimal `db:"celkem_bez_dph" json:"celkem_bez_dph"`
	VATRate         decimal.Decimal `db:"dph_sazba" json:"dph_sazba"`
	VATAmount       decimal.Decimal `db:"dph_castka" json:"dph_castka"`
	GrossTotal      decimal.Decimal `db:"celkem_s_dph" json:"celkem_s_dph"`
	CostOfGoods     decimal.Decimal `db:"nakladova_cena_celkem" json:"nakladova_cena_celkem"`
	BranchID        string          `db:"pobocka_id" json:"pobocka_id"`
	Channel         string          `db:"kanal" json:"kanal"`
	PaymentStatus   string          `db:"stav_platby" json:"stav_platby"`
	Currency        string          `db:"mena" json:"mena"`
}

// SaleColumns is the column order of fact_prodeje
var SaleColumns = []string{
	"faktura_id", "datum", "zakaznik_id", "produkt_id", "mnozstvi", "jednotkova_cena",
	"sleva_pct", "celkem_bez_dph", "dph_sazba", "dph_castka", "celkem_s_dph",
	"nakladova_cena_celkem", "pobocka_id", "kanal", "stav_platby", "mena",
}

func (s Sale) Record() []any {
	return []any{
		s.ID, s.Date, s.CustomerID, s.ProductID, s.Quantity, s.UnitPrice,
		s.DiscountPercent, s.NetTotal, s.VATRate, s.VATAmount, s.GrossTotal,
		s.CostOfGoods, s.BranchID, s.Channel, s.PaymentStatus, s.Currency,
	}
}

// Purchase is a purchase order line
type Purchase struct {
	ID           string          `db:"objednavka_id" json:"objednavka_id"`
	Date         time.Time       `db:"datum" json:"datum"`
	SupplierID   string          `db:"dodavatel_id" json:"dodavatel_id"`
	ItemType     string          `db:"typ_polozky" json:"typ_polozky"`
	Quantity     int             `db:"mnozstvi" json:"mnozstvi"`
	UnitPrice    decimal.Decimal `db:"jednotkova_cena" json:"jednotkova_cena"`
	NetTotal     decimal.Decimal `db:"celkem_bez_dph" json:"celkem_bez_dph"`
	VATRate      decimal.Decimal `db:"dph_sazba" json:"dph_sazba"`
	VATAmount    decimal.Decimal `db:"dph_castka" json:"dph_castka"`
	GrossTotal   decimal.Decimal `db:"celkem_s_dph" json:"celkem_s_dph"`
	CostCenterID string          `db:"stredisko_id" json:"stredisko_id"`
	Status       string          `db:"stav" json:"stav"`
	Currency     string          `db:"mena" json:"mena"`
}

// PurchaseColumns is the column order of fact_nakupy
var PurchaseColumns = []string{
	"objednavka_id", "datum", "dodavatel_id", "typ_polozky", "mnozstvi", "jednotkova_cena",
	"celkem_bez_dph", "dph_sazba", "dph_castka", "celkem_s_dph", "stredisko_id", "stav", "mena",
}

func (p Purchase) Record() []any {
	return []any{
		p.ID, p.Date, p.SupplierID, p.ItemType, p.Quantity, p.UnitPrice,
		p.NetTotal, p.VATRate, p.VATAmount, p.GrossTotal, p.CostCenterID, p.Status, p.Currency,
	}
}

// ProductionOrder is a manufacturing order for one product
type ProductionOrder struct {
	ID                  string          `db:"zakazka_id" json:"zakazka_id"`
	ProductID           string          `db:"produkt_id" json:"produkt_id"`
	PlannedQuantity     int             `db:"planovane_mnozstvi" json:"planovane_mnozstvi"`
	StartDate           time.Time       `db:"datum_zahajeni" json:"datum_zahajeni"`
	EndDate             time.Time       `db:"datum_ukonceni" json:"datum_ukonceni"`
	CostCenterID        string          `db:"stredisko_id" json:"stredisko_id"`
	MaterialCost        decimal.Decimal `db:"naklady_material" json:"naklady_material"`
	LaborCost           decimal.Decimal `db:"naklady_prace" json:"naklady_prace"`
	OverheadCost        decimal.Decimal `db:"naklady_rezie" json:"naklady_rezie"`
	TotalCost           decimal.Decimal `db:"celkove_naklady" json:"celkove_naklady"`
	Status              string          `db:"stav" json:"stav"`
	CapacityUtilization decimal.Decimal `db:"vyuziti_kapacity" json:"vyuziti_kapacity"`
	Defects             int             `db:"zmetky" json:"zmetky"`
}

// ProductionOrderColumns is the column order of fact_vyrobni_zakazky
var ProductionOrderColumns = []string{
	"zakazka_id", "produkt_id", "planovane_mnozstvi", "datum_zahajeni", "datum_ukonceni",
	"stredisko_id", "naklady_material", "naklady_prace", "naklady_rezie",
	"celkove_naklady", "stav", "vyuziti_kapacity", "zmetky",
}

func (p ProductionOrder) Record() []any {
	return []any{
		p.ID, p.ProductID, p.PlannedQuantity, p.StartDate, p.EndDate,
		p.CostCenterID, p.MaterialCost, p.LaborCost, p.OverheadCost,
		p.TotalCost, p.Status, p.CapacityUtilization, p.Defects,
	}
}
