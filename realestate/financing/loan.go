package financing

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shopspring/decimal"
)

type LoanTerm int

const (
	Term30Years LoanTerm = iota
	Term20Years
	Term15Years
	Term10Years
)

func (lt LoanTerm) String() string {
	return [...]string{"30 Years", "20 Years", "15 Years", "10 Years"}[lt]
}

func (lt LoanTerm) Years() int {
	switch lt {
	case Term30Years:
		return 30
	case Term20Years:
		return 20
	case Term15Years:
		return 15
	case Term10Years:
		return 10
	default:
		panic(fmt.Sprintf("Unknown loan term: %d", lt))
	}
}

// Loan is a priced fixed-rate mortgage plus its amortization schedule.
// HoldYears, when positive and shorter than TermYears, truncates the
// generated schedule to the hold period rather than the full loan term —
// this is what lets the pro forma runner ask for "just the years this deal
// holds the property" instead of the full 30-year schedule.
type Loan struct {
	HomePrice    decimal.Decimal `json:"home_price" env:"LOAN_HOME_PRICE" envDefault:"300000"`
	DownPayment  decimal.Decimal `json:"down_payment" env:"LOAN_DOWN_PAYMENT" envDefault:"60000"`
	InterestRate InterestRate    `json:"interest_rate" env:"INTEREST_RATE" envDefault:"500"` // basis points
	StartDate    time.Time       `json:"start_date" env:"LOAN_START_DATE" envDefault:"2024-01-01"`
	TermYears    int             `json:"term_years" env:"LOAN_TERM_YEARS" envDefault:"30"`
	HoldYears    int             `json:"hold_years" env:"LOAN_HOLD_YEARS" envDefault:"0"`
	EndDate      time.Time       `json:"end_date" env:"LOAN_END_DATE" envDefault:"2054-01-01"`
}

func NewLoan(
	homePrice int64,
	downPayment int64,
	interestRate float64, // percent, e.g. 5.0 for 5%
	years LoanTerm,
	holdYears int,
) *Loan {
	if years.Years() <= 0 {
		panic(fmt.Sprintf("Invalid loan term: %d years. Must be greater than 0.", years))
	}

	st := time.Now()
	startDate := time.Date(st.Year(), st.Month()+1, 1, 0, 0, 0, 0, st.Location())
	endDate := startDate.AddDate(years.Years(), 0, -1)
	return &Loan{
		HomePrice:    decimal.NewFromInt(homePrice),
		DownPayment:  decimal.NewFromInt(downPayment),
		InterestRate: NewInterestRate(interestRate),
		StartDate:    startDate,
		EndDate:      endDate,
		TermYears:    years.Years(),
		HoldYears:    holdYears,
	}
}

func (l *Loan) MonthlyPayment() decimal.Decimal {
	return MonthlyPayment(l.LoanAmount(), l.InterestRate.Decimal(), l.TermYears)
}

func (l *Loan) LoanAmount() decimal.Decimal {
	return l.HomePrice.Sub(l.DownPayment)
}

// Schedule generates the amortization schedule for this loan, truncated to
// HoldYears when it is set and shorter than the loan term.
func (l *Loan) Schedule() Schedule {
	return AmortizationSchedule(l.LoanAmount(), l.InterestRate.Decimal(), l.TermYears, l.HoldYears)
}

func (l *Loan) totalPayment(s Schedule) decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Payments {
		total = total.Add(p.Payment)
	}
	return total
}

func (l *Loan) GetTotalPayment() decimal.Decimal {
	return l.totalPayment(l.Schedule())
}

func (l *Loan) GetTotalInterest() decimal.Decimal {
	return l.Schedule().TotalInterest
}

func (l *Loan) GetTotalPrincipal() decimal.Decimal {
	return l.Schedule().TotalPrincipal
}

func boolPtr(b bool) *bool { return &b }

// PlotSummary renders cumulative principal paid, interest paid, and
// remaining balance over time to path, an interactive go-echarts HTML page.
func (l *Loan) PlotSummary(path string) (string, error) {
	schedule := l.Schedule()

	totalInterest := schedule.TotalInterest
	totalPayment := l.totalPayment(schedule)
	loanAmount := l.LoanAmount()

	barChart := charts.NewBar()
	barChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Amortization for Mortgage Loan",
			Subtitle: fmt.Sprintf("Loan: $%s | Total Interest: $%s | Total Cost: $%s | Payoff: %s",
				loanAmount.Round(0).String(),
				totalInterest.Abs().Round(0).String(),
				totalPayment.Abs().Round(0).String(),
				l.EndDate.Format("Jan 2006")),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1400px",
			Height: "600px",
		}),
		charts.WithToolboxOpts(opts.Toolbox{Show: boolPtr(true)}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    boolPtr(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: boolPtr(true),
			Top:  "bottom",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "inside",
			Start: 0,
			End:   100,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)

	var xAxis []string
	var principalPaidArr []opts.BarData
	var interestPaidArr []opts.BarData
	var loanBalanceArr []opts.BarData

	cumulativePrincipal := decimal.Zero
	cumulativeInterest := decimal.Zero
	initialLoan := loanAmount

	for _, row := range schedule.Payments {
		cumulativePrincipal = cumulativePrincipal.Add(row.Principal.Abs())
		cumulativeInterest = cumulativeInterest.Add(row.Interest.Abs())
		remainingBalance := initialLoan.Sub(cumulativePrincipal)

		xAxis = append(xAxis, fmt.Sprintf("Month %d", row.Period))
		principalPaidArr = append(principalPaidArr, opts.BarData{Value: cumulativePrincipal.Round(0).InexactFloat64()})
		interestPaidArr = append(interestPaidArr, opts.BarData{Value: cumulativeInterest.Round(0).InexactFloat64()})
		loanBalanceArr = append(loanBalanceArr, opts.BarData{Value: remainingBalance.Round(0).InexactFloat64()})
	}

	barChart.SetXAxis(xAxis).
		AddSeries("Principal Paid", principalPaidArr).
		AddSeries("Interest Paid", interestPaidArr).
		AddSeries("Loan Balance", loanBalanceArr).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: boolPtr(false),
			}),
		)

	var buf bytes.Buffer
	if err := barChart.Render(&buf); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// LoanSummary returns a formatted string with all loan totals.
func (l *Loan) LoanSummary() string {
	schedule := l.Schedule()
	loanAmount := l.LoanAmount()
	monthlyPayment := l.MonthlyPayment()

	var sb strings.Builder
	sb.WriteString("LOAN SUMMARY\n")
	sb.WriteString("============\n")
	sb.WriteString(fmt.Sprintf("Loan Amount:        $%s\n", loanAmount.Round(0).String()))
	sb.WriteString(fmt.Sprintf("Interest Rate:      %s\n", l.InterestRate.String()))
	sb.WriteString(fmt.Sprintf("Loan Term:          %d years\n", l.TermYears))
	sb.WriteString(fmt.Sprintf("Monthly Payment:    $%s\n", monthlyPayment.Abs().Round(2).String()))
	sb.WriteString(fmt.Sprintf("Total Interest:     $%s\n", schedule.TotalInterest.Abs().Round(0).String()))
	sb.WriteString(fmt.Sprintf("Total Cost of Loan: $%s\n", l.totalPayment(schedule).Abs().Round(0).String()))
	sb.WriteString(fmt.Sprintf("Payoff Date:        %s\n", l.EndDate.Format("Jan 2006")))

	return sb.String()
}
