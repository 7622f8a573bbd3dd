package report

import (
	"fmt"

	"fjacquet/expensas-report/internal/months"
)

// Texts holds the wording of a report. Format strings take the unit
// identifier (Heading, ChartTitle), the formatted amount (Debt, Credit) or
// the period label (ExpensasTitle, WaterTitle).
type Texts struct {
	Heading       string
	DepositsTitle string
	DepositLine   string
	NoDeposits    string
	ExpensasTitle string
	ExpensasHead  [2]string
	NoExpensas    string
	WaterTitle    string
	WaterHead     [2]string
	NoWater       string
	BalanceTitle  string
	ChartTitle    string
	ChartXLabel   string
	ChartPaid     string
	ChartOwed     string
	Debt          string
	Credit        string
	DocumentTitle string
}

var texts = map[string]Texts{
	months.LocaleSpanish: {
		Heading:       "Departamento %s",
		DepositsTitle: "Pagos realizados en favor del edificio",
		DepositLine:   "Fecha: %s, Hora: %s, Monto: %s, Nota: %s",
		NoDeposits:    "No se encontraron pagos para este departamento.",
		ExpensasTitle: "Expensas %s",
		ExpensasHead:  [2]string{"Mes", "Monto Expensas"},
		NoExpensas:    "No se encontraron expensas para este departamento.",
		WaterTitle:    "Costo de consumo agua %s",
		WaterHead:     [2]string{"Mes", "Monto Agua"},
		NoWater:       "No se encontró información de agua para este departamento.",
		BalanceTitle:  "Balance de pagos",
		ChartTitle:    "Balance de pagos del departamento %s",
		ChartXLabel:   "Monto",
		ChartPaid:     "Pagos realizados",
		ChartOwed:     "Expensas y Agua",
		Debt:          "Este departamento/tienda debe al edificio %s",
		Credit:        "Le felicitamos, usted está al día y tiene a su favor el monto de %s",
		DocumentTitle: "Informe por departamento",
	},
	months.LocaleEnglish: {
		Heading:       "Unit %s",
		DepositsTitle: "Payments made to the building",
		DepositLine:   "Date: %s, Time: %s, Amount: %s, Note: %s",
		NoDeposits:    "No payments were found for this unit.",
		ExpensasTitle: "Maintenance fees %s",
		ExpensasHead:  [2]string{"Month", "Fee"},
		NoExpensas:    "No maintenance fees were found for this unit.",
		WaterTitle:    "Water cost %s",
		WaterHead:     [2]string{"Month", "Water"},
		NoWater:       "No water cost information was found for this unit.",
		BalanceTitle:  "Payment balance",
		ChartTitle:    "Payment balance of unit %s",
		ChartXLabel:   "Amount",
		ChartPaid:     "Payments made",
		ChartOwed:     "Fees and water",
		Debt:          "This unit owes the building %s",
		Credit:        "Congratulations, you are up to date with a credit of %s",
		DocumentTitle: "Report by unit",
	},
}

// TextsFor returns the wording for locale.
func TextsFor(locale string) (Texts, error) {
	t, ok := texts[locale]
	if !ok {
		return Texts{}, fmt.Errorf("no report texts for locale: %s", locale)
	}
	return t, nil
}
