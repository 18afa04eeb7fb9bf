package cocoa

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// Report bundles the loaded series and derived figures written to the
// statistics workbook.
type Report struct {
	Seasons []Season
	Prices  []PriceDay

	// Period is the seasonal decomposition period in months.
	Period int
}

// Summary holds the headline figures of a report.
type Summary struct {
	MeanProduction  float64
	MeanGrowthPct   float64 // mean year-over-year production change
	MeanEstimateGap float64 // mean (production-estimate)/estimate, percent
	MeanICCO        float64
	CorrICCO        float64
	CorrLondon      float64
	CorrNewYork     float64
}

// Summarize computes the headline figures: production means and growth, and
// the correlation of seasonal production against the yearly mean of each
// price series.
func (r *Report) Summarize() Summary {
	prod := make([]float64, len(r.Seasons))
	gap := make([]float64, len(r.Seasons))
	for i, s := range r.Seasons {
		prod[i] = s.Production
		if s.Estimate != 0 && !math.IsNaN(s.Estimate) {
			gap[i] = (s.Production - s.Estimate) / s.Estimate * 100
		} else {
			gap[i] = math.NaN()
		}
	}

	// Yearly price means aligned with the production seasons.
	icco := r.yearlyMeans(func(d PriceDay) float64 { return d.ICCO })
	london := r.yearlyMeans(func(d PriceDay) float64 { return d.London })
	newYork := r.yearlyMeans(func(d PriceDay) float64 { return d.NewYork })

	var iccoAll []float64
	for _, d := range r.Prices {
		iccoAll = append(iccoAll, d.ICCO)
	}

	return Summary{
		MeanProduction:  Mean(prod),
		MeanGrowthPct:   Mean(PctChange(prod)),
		MeanEstimateGap: Mean(gap),
		MeanICCO:        Mean(iccoAll),
		CorrICCO:        Correlation(prod, icco),
		CorrLondon:      Correlation(prod, london),
		CorrNewYork:     Correlation(prod, newYork),
	}
}

// yearlyMeans returns, per production season, the mean of the picked price
// field over that season's calendar year. Years without prices yield NaN.
func (r *Report) yearlyMeans(pick func(PriceDay) float64) []float64 {
	byYear := map[int][]float64{}
	for _, d := range r.Prices {
		byYear[d.Date.Year()] = append(byYear[d.Date.Year()], pick(d))
	}
	out := make([]float64, len(r.Seasons))
	for i, s := range r.Seasons {
		vals, ok := byYear[s.Year]
		if !ok {
			out[i] = math.NaN()
			continue
		}
		out[i] = Mean(vals)
	}
	return out
}

// WriteWorkbook writes the report as a spreadsheet: a summary sheet, the
// monthly price means, and the seasonal decomposition of the monthly ICCO
// price.
func (r *Report) WriteWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("workbook: %w", err)
	}
	s := r.Summarize()
	setRow := func(sheet string, row int, values ...any) {
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if fv, ok := v.(float64); ok && math.IsNaN(fv) {
				continue
			}
			f.SetCellValue(sheet, cell, v)
		}
	}
	setRow("Summary", 1, "Figure", "Value")
	setRow("Summary", 2, "Average Annual Production (tonnes)", s.MeanProduction)
	setRow("Summary", 3, "Average YoY Production Growth (%)", s.MeanGrowthPct)
	setRow("Summary", 4, "Average Production vs Estimate Gap (%)", s.MeanEstimateGap)
	setRow("Summary", 5, "Average ICCO Daily Price (US$/tonne)", s.MeanICCO)
	setRow("Summary", 6, "Production vs ICCO Price Correlation", s.CorrICCO)
	setRow("Summary", 7, "Production vs London Futures Correlation", s.CorrLondon)
	setRow("Summary", 8, "Production vs New York Futures Correlation", s.CorrNewYork)

	monthly := MonthlyMean(r.Prices, func(d PriceDay) float64 { return d.ICCO })
	london := MonthlyMean(r.Prices, func(d PriceDay) float64 { return d.London })
	newYork := MonthlyMean(r.Prices, func(d PriceDay) float64 { return d.NewYork })

	if _, err := f.NewSheet("Monthly Prices"); err != nil {
		return fmt.Errorf("workbook: %w", err)
	}
	setRow("Monthly Prices", 1, "Month", "ICCO (US$/t)", "London (£/t)", "New York (US$/t)")
	for i, p := range monthly {
		row := []any{p.Month.Format("2006-01"), p.Value}
		if i < len(london) {
			row = append(row, london[i].Value)
		}
		if i < len(newYork) {
			row = append(row, newYork[i].Value)
		}
		setRow("Monthly Prices", i+2, row...)
	}

	period := r.Period
	if period == 0 {
		period = 12
	}
	observed := make([]float64, len(monthly))
	for i, p := range monthly {
		observed[i] = p.Value
	}
	if dec, err := Decompose(observed, period); err == nil {
		if _, err := f.NewSheet("Decomposition"); err != nil {
			return fmt.Errorf("workbook: %w", err)
		}
		setRow("Decomposition", 1, "Month", "Observed", "Trend", "Seasonal", "Residual")
		for i, p := range monthly {
			setRow("Decomposition", i+2, p.Month.Format("2006-01"), observed[i], dec.Trend[i], dec.Seasonal[i], dec.Resid[i])
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("workbook: save %s: %w", path, err)
	}
	return nil
}
