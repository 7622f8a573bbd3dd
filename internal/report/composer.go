package report

import (
	"fmt"

	"fjacquet/expensas-report/internal/aggregator"
	"fjacquet/expensas-report/internal/chart"
	"fjacquet/expensas-report/internal/currencyutils"
	"fjacquet/expensas-report/internal/logging"
	"fjacquet/expensas-report/internal/models"
	"fjacquet/expensas-report/internal/months"
)

// ChartRenderer renders a chart to PNG bytes.
type ChartRenderer interface {
	Render(spec chart.Spec) ([]byte, error)
}

// Sources are the reshaped inputs of a report.
type Sources struct {
	Deposits *aggregator.Groups
	Expensas []models.LongFeeRecord
	Water    []models.LongFeeRecord
}

// ComposerOptions configures the wording of the sections.
type ComposerOptions struct {
	Texts          Texts
	CurrencySuffix string
	PeriodLabel    string
}

// Composer builds one Section per selected unit.
type Composer struct {
	order    *months.Order
	renderer ChartRenderer
	opts     ComposerOptions
	logger   logging.Logger
}

// NewComposer creates a Composer.
func NewComposer(order *months.Order, renderer ChartRenderer, opts ComposerOptions, logger logging.Logger) *Composer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Composer{order: order, renderer: renderer, opts: opts, logger: logger}
}

// Compose returns the sections of units in the given order. Units without
// any data still get a section with empty listings and a zero balance.
func (c *Composer) Compose(src Sources, units []string) ([]Section, error) {
	sections := make([]Section, 0, len(units))
	for _, unit := range units {
		s, err := c.ComposeUnit(src, unit)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// ComposeUnit builds the section of a single unit.
func (c *Composer) ComposeUnit(src Sources, unit string) (Section, error) {
	t := c.opts.Texts
	log := c.logger.WithField(logging.FieldUnit, unit)

	var deposits []models.DepositRecord
	if src.Deposits != nil {
		var found bool
		if deposits, found = src.Deposits.Lookup(unit); !found {
			log.Debug("No deposits for unit")
		}
	}

	expensas, unknownExp := months.Sequence(c.order, models.FilterUnit(src.Expensas, unit), monthLabel)
	water, unknownWater := months.Sequence(c.order, models.FilterUnit(src.Water, unit), monthLabel)
	unknown := mergeUnique(unknownExp, unknownWater)
	for _, m := range unknown {
		log.Warn("Month label is not a known month, listed last", logging.F(logging.FieldMonth, m))
	}

	balance := models.NewUnitBalance(unit,
		models.SumDeposits(deposits),
		models.SumFees(expensas).Add(models.SumFees(water)))

	section := Section{
		UnitID:        unit,
		Heading:       fmt.Sprintf(t.Heading, unit),
		DepositsTitle: t.DepositsTitle,
		Deposits:      c.depositLines(deposits),
		NoDeposits:    t.NoDeposits,
		Expensas: FeeTable{
			Title:  fmt.Sprintf(t.ExpensasTitle, c.opts.PeriodLabel),
			Header: t.ExpensasHead,
			Lines:  feeLines(expensas),
			Empty:  t.NoExpensas,
		},
		Water: FeeTable{
			Title:  fmt.Sprintf(t.WaterTitle, c.opts.PeriodLabel),
			Header: t.WaterHead,
			Lines:  feeLines(water),
			Empty:  t.NoWater,
		},
		BalanceTitle:  t.BalanceTitle,
		Balance:       balance,
		Notice:        c.notice(balance),
		UnknownMonths: unknown,
	}

	png, err := c.renderer.Render(chart.BalanceSpec(balance, chart.BalanceLabels{
		Title:  fmt.Sprintf(t.ChartTitle, unit),
		XLabel: t.ChartXLabel,
		Paid:   t.ChartPaid,
		Owed:   t.ChartOwed,
	}))
	if err != nil {
		return Section{}, fmt.Errorf("failed to render balance chart for unit %s: %w", unit, err)
	}
	section.Chart = png

	log.Debug("Composed section",
		logging.F(logging.FieldTotalPaid, models.FormatPlain(balance.TotalPaid)),
		logging.F(logging.FieldTotalOwed, models.FormatPlain(balance.TotalOwed)),
		logging.F(logging.FieldDifference, models.FormatPlain(balance.Difference)))

	return section, nil
}

func (c *Composer) depositLines(deposits []models.DepositRecord) []DepositLine {
	lines := make([]DepositLine, 0, len(deposits))
	for _, d := range deposits {
		amount := models.RoundDisplay(d.Amount)
		lines = append(lines, DepositLine{
			Date:   d.Date,
			Time:   d.Time,
			Amount: amount,
			Note:   d.Note,
			Text:   fmt.Sprintf(c.opts.Texts.DepositLine, d.Date, d.Time, models.FormatPlain(amount), d.Note),
		})
	}
	return lines
}

// notice picks the closing sentence. A zero difference is never a debt.
func (c *Composer) notice(b models.UnitBalance) Notice {
	if b.InDebt() {
		return Notice{
			Kind:   NoticeDebt,
			Amount: b.Debt(),
			Text:   fmt.Sprintf(c.opts.Texts.Debt, currencyutils.FormatAmount(b.Debt(), c.opts.CurrencySuffix)),
		}
	}
	return Notice{
		Kind:   NoticeCredit,
		Amount: b.Credit(),
		Text:   fmt.Sprintf(c.opts.Texts.Credit, currencyutils.FormatAmount(b.Credit(), c.opts.CurrencySuffix)),
	}
}

func feeLines(records []models.LongFeeRecord) []FeeLine {
	lines := make([]FeeLine, 0, len(records))
	for _, r := range records {
		lines = append(lines, FeeLine{Month: months.Normalize(r.MonthLabel), Amount: models.RoundDisplay(r.Amount)})
	}
	return lines
}

func monthLabel(r models.LongFeeRecord) string {
	return r.MonthLabel
}

func mergeUnique(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, s := range append(append([]string(nil), a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
