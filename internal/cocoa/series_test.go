package cocoa

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeasons(t *testing.T) {
	in := "season,production,estimates\n" +
		"2020,2105000,2150000\n" +
		"2021,2200000,2180000\n"
	seasons, err := ReadSeasons(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, 2020, seasons[0].Year)
	assert.Equal(t, 2105000.0, seasons[0].Production)
	assert.Equal(t, 2180000.0, seasons[1].Estimate)
}

func TestReadSeasonsBadYear(t *testing.T) {
	in := "season,production,estimates\nnot-a-year,1,2\n"
	_, err := ReadSeasons(strings.NewReader(in))
	require.Error(t, err)
}

func TestReadPrices(t *testing.T) {
	in := `Date,London futures (£ sterling/tonne),New York futures (US$/tonne),ICCO daily price (US$/tonne)
03/01/2022,"1,742.00","2,510.25",2601.13
04/01/2022,n/a,2490.00,"2,588.40"
`
	days, err := ReadPrices(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, time.Date(2022, time.January, 3, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, 1742.0, days[0].London)
	assert.Equal(t, 2510.25, days[0].NewYork)
	assert.Equal(t, 2601.13, days[0].ICCO)

	// Unparseable cells coerce to NaN instead of failing the load.
	assert.True(t, math.IsNaN(days[1].London))
	assert.Equal(t, 2588.40, days[1].ICCO)
}

func TestReadPricesBadDate(t *testing.T) {
	in := "Date,London futures (£ sterling/tonne),New York futures (US$/tonne),ICCO daily price (US$/tonne)\n2022-01-03,1,2,3\n"
	_, err := ReadPrices(strings.NewReader(in))
	require.Error(t, err)
}

func TestReadPricesMissingColumn(t *testing.T) {
	in := "Date,Other\n03/01/2022,1\n"
	_, err := ReadPrices(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestReadConsumption(t *testing.T) {
	in := "country,WhichCountryEatsTheMostChocolate_ChocolateProductsNESConsumed_Tonnes_2022,WhichCountryEatsTheMostChocolate_ConsumptionPerCap_GramsPerCapPerDay_2022\n" +
		"Switzerland,90000,16.2\n" +
		"Germany,327000,11.1\n" +
		"Belgium,61000,13.5\n"
	rows, err := ReadConsumption(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Switzerland", rows[0].Country)
	assert.Equal(t, 16.2, rows[0].PerCapita)

	top := TopConsumers(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Germany", top[0].Country)
	assert.Equal(t, "Switzerland", top[1].Country)
}

func TestTopConsumersNaNLast(t *testing.T) {
	rows := []Consumption{
		{Country: "A", Tonnes: math.NaN()},
		{Country: "B", Tonnes: 10},
		{Country: "C", Tonnes: 20},
	}
	top := TopConsumers(rows, 3)
	assert.Equal(t, "C", top[0].Country)
	assert.Equal(t, "B", top[1].Country)
	assert.Equal(t, "A", top[2].Country)
}
