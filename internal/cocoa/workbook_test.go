package cocoa

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func reportFixture() *Report {
	seasons := []Season{
		{Year: 2020, Production: 2000000, Estimate: 2100000},
		{Year: 2021, Production: 2200000, Estimate: 2150000},
	}
	var prices []PriceDay
	date := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 730; i++ {
		prices = append(prices, PriceDay{
			Date:    date.AddDate(0, 0, i),
			London:  1700 + float64(i%30),
			NewYork: 2400 + float64(i%30),
			ICCO:    2500 + float64(i%30),
		})
	}
	return &Report{Seasons: seasons, Prices: prices, Period: 12}
}

func TestSummarize(t *testing.T) {
	s := reportFixture().Summarize()
	assert.InDelta(t, 2100000, s.MeanProduction, 1e-6)
	assert.InDelta(t, 10.0, s.MeanGrowthPct, 1e-9)
	assert.GreaterOrEqual(t, s.MeanICCO, 2500.0)
	assert.LessOrEqual(t, s.MeanICCO, 2530.0)
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, reportFixture().WriteWorkbook(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Monthly Prices")
	assert.Contains(t, sheets, "Decomposition")

	v, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Average Annual Production (tonnes)", v)

	v, err = f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	mean, err := strconv.ParseFloat(v, 64)
	require.NoError(t, err)
	assert.InDelta(t, 2100000, mean, 1e-6)

	// 24 months of data plus the header row.
	v, err = f.GetCellValue("Monthly Prices", "A25")
	require.NoError(t, err)
	assert.Equal(t, "2021-12", v)
}
