package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the balance-sheet / income-statement side of an account
type AccountType string

const (
	AccountTypeAssets      AccountType = "Aktiva"
	AccountTypeLiabilities AccountType = "Pasiva"
	AccountTypeCosts       AccountType = "Náklady"
	AccountTypeRevenue     AccountType = "Výnosy"
)

// FinancialAccountsGroup is the chart group holding cash and bank accounts
const FinancialAccountsGroup = "Finanční účty"

// Account is one entry in the chart of accounts
type Account struct {
	Number string      `db:"ucet_cislo" json:"ucet_cislo"` // 3 digits, zero padded
	Name   string      `db:"ucet_nazev" json:"ucet_nazev"`
	Type   AccountType `db:"typ" json:"typ"`
	Group  string      `db:"skupina" json:"skupina"`
	Class  string      `db:"trida" json:"trida"` // first digit of Number
	Status string      `db:"stav" json:"stav"`
}

// AccountColumns is the column order of dim_ucty
var AccountColumns = []string{"ucet_cislo", "ucet_nazev", "typ", "skupina", "trida", "stav"}

func (a Account) Record() []any {
	return []any{a.Number, a.Name, string(a.Type), a.Group, a.Class, a.Status}
}

// IsProfitAndLoss reports whether the account is a cost or revenue account
func (a Account) IsProfitAndLoss() bool {
	return a.Type == AccountTypeCosts || a.Type == AccountTypeRevenue
}

// Transaction is an accounting document posted to a debit and a credit account
type Transaction struct {
	ID             string          `db:"transakce_id" json:"transakce_id"`
	Date           time.Time       `db:"datum" json:"datum"`
	DocumentType   string          `db:"typ_dokladu" json:"typ_dokladu"`
	Amount         decimal.Decimal `db:"castka" json:"castka"`
	Currency       string          `db:"mena" json:"mena"`
	Rate           decimal.Decimal `db:"kurz" json:"kurz"`
	AmountCZK      decimal.Decimal `db:"castka_czk" json:"castka_czk"`
	VATRate        decimal.Decimal `db:"dph_sazba" json:"dph_sazba"`
	VATAmount      decimal.Decimal `db:"dph_castka" json:"dph_castka"`
	DebitAccount   string          `db:"ucet_md" json:"ucet_md"`
	CreditAccount  string          `db:"ucet_dal" json:"ucet_dal"`
	CostCenterID   string          `db:"stredisko_id" json:"stredisko_id"`
	ProjectID      string          `db:"projekt_id" json:"projekt_id"`
	ProfitCenterID string          `db:"profit_centrum_id" json:"profit_centrum_id"`
	BranchID       string          `db:"pobocka_id" json:"pobocka_id"`
	Note           string          `db:"popis" json:"popis"`
	Status         string          `db:"stav" json:"stav"`
	User           string          `db:"uzivatel" json:"uzivatel"`
}

// TransactionColumns is the column order of fact_transakce
var TransactionColumns = []string{
	"transakce_id", "datum", "typ_dokladu", "castka", "mena", "kurz", "castka_czk",
	"dph_sazba", "dph_castka", "ucet_md", "ucet_dal", "stredisko_id", "projekt_id",
	"profit_centrum_id", "pobocka_id", "popis", "stav", "uzivatel",
}

func (t Transaction) Record() []any {
	return []any{
		t.ID, t.Date, t.DocumentType, t.Amount, t.Currency, t.Rate, t.AmountCZK,
		t.VATRate, t.VATAmount, t.DebitAccount, t.CreditAccount, t.CostCenterID, t.ProjectID,
		t.ProfitCenterID, t.BranchID, t.Note, t.Status, t.User,
	}
}

// CashFlowDirection tells whether money comes in or goes out
type CashFlowDirection string

const (
	CashFlowIncome  CashFlowDirection = "Příjem"
	CashFlowExpense CashFlowDirection = "Výdaj"
)

// CashFlow is a movement on a financial account. Expenses carry a negative amount.
type CashFlow struct {
	ID           string            `db:"cashflow_id" json:"cashflow_id"`
	Date         time.Time         `db:"datum" json:"datum"`
	MovementType string            `db:"typ_pohybu" json:"typ_pohybu"`
	Direction    CashFlowDirection `db:"smer" json:"smer"`
	Amount       decimal.Decimal   `db:"castka" json:"castka"`
	Account      string            `db:"ucet" json:"ucet"`
	BranchID     string            `db:"pobocka_id" json:"pobocka_id"`
	Currency     string            `db:"mena" json:"mena"`
	Status       string            `db:"stav" json:"stav"`
}

// CashFlowColumns is the column order of fact_cashflow
var CashFlowColumns = []string{"cashflow_id", "datum", "typ_pohybu", "smer", "castka", "ucet", "pobocka_id", "mena", "stav"}

func (c CashFlow) Record() []any {
	return []any{c.ID, c.Date, c.MovementType, string(c.Direction), c.Amount, c.Account, c.BranchID, c.Currency, c.Status}
}

// Budget compares the planned and actual amount of one account for one
// cost center in one month.
type Budget struct {
	CostCenterID    string          `db:"stredisko_id" json:"stredisko_id"`
	AccountNumber   string          `db:"ucet_cislo" json:"ucet_cislo"`
	Period          string          `db:"obdobi" json:"obdobi"` // YYYY-MM
	Plan            decimal.Decimal `db:"plan" json:"plan"`
	Actual          decimal.Decimal `db:"skutecnost" json:"skutecnost"`
	Variance        decimal.Decimal `db:"odchylka" json:"odchylka"`
	VariancePercent decimal.Decimal `db:"odchylka_pct" json:"odchylka_pct"`
}

// BudgetColumns is the column order of fact_budget
var BudgetColumns = []string{"stredisko_id", "ucet_cislo", "obdobi", "plan", "skutecnost", "odchylka", "odchylka_pct"}

func (b Budget) Record() []any {
	return []any{b.CostCenterID, b.AccountNumber, b.Period, b.Plan, b.Actual, b.Variance, b.VariancePercent}
}
