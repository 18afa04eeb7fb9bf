// Package cocoa loads the Côte d'Ivoire cocoa datasets (seasonal production,
// daily futures prices, global consumption) and computes descriptive
// statistics over them.
package cocoa

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Season is one cocoa season's production figures in tonnes.
type Season struct {
	Year       int
	Production float64
	Estimate   float64
}

// PriceDay is one trading day of cocoa futures prices. Cells that could not
// be parsed are NaN.
type PriceDay struct {
	Date    time.Time
	London  float64 // £ sterling per tonne
	NewYork float64 // US$ per tonne
	ICCO    float64 // US$ per tonne
}

// Consumption is one country's chocolate consumption for the reference year.
type Consumption struct {
	Country   string
	Tonnes    float64
	PerCapita float64 // grams per capita per day
}

// ReadSeasons parses the production CSV (season, production, estimates).
func ReadSeasons(r io.Reader) ([]Season, error) {
	rows, header, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("seasons: %w", err)
	}
	year, err := column(header, "season")
	if err != nil {
		return nil, fmt.Errorf("seasons: %w", err)
	}
	prod, err := column(header, "production")
	if err != nil {
		return nil, fmt.Errorf("seasons: %w", err)
	}
	est, err := column(header, "estimates")
	if err != nil {
		return nil, fmt.Errorf("seasons: %w", err)
	}

	var seasons []Season
	for _, row := range rows {
		y, err := strconv.Atoi(strings.TrimSpace(row[year]))
		if err != nil {
			return nil, fmt.Errorf("seasons: bad season %q: %w", row[year], err)
		}
		seasons = append(seasons, Season{
			Year:       y,
			Production: parseNumber(row[prod]),
			Estimate:   parseNumber(row[est]),
		})
	}
	return seasons, nil
}

// LoadSeasons reads the production CSV from disk.
func LoadSeasons(path string) ([]Season, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seasons: %w", err)
	}
	defer f.Close()
	return ReadSeasons(f)
}

// ReadPrices parses the daily prices CSV. Dates are day/month/year; numeric
// cells may carry thousands separators, and unparseable cells become NaN
// rather than failing the load.
func ReadPrices(r io.Reader) ([]PriceDay, error) {
	rows, header, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}
	date, err := column(header, "Date")
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}
	london, err := column(header, "London futures (£ sterling/tonne)")
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}
	newYork, err := column(header, "New York futures (US$/tonne)")
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}
	icco, err := column(header, "ICCO daily price (US$/tonne)")
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}

	var days []PriceDay
	for _, row := range rows {
		d, err := time.Parse("02/01/2006", strings.TrimSpace(row[date]))
		if err != nil {
			return nil, fmt.Errorf("prices: bad date %q: %w", row[date], err)
		}
		days = append(days, PriceDay{
			Date:    d,
			London:  parseNumber(row[london]),
			NewYork: parseNumber(row[newYork]),
			ICCO:    parseNumber(row[icco]),
		})
	}
	return days, nil
}

// LoadPrices reads the daily prices CSV from disk.
func LoadPrices(path string) ([]PriceDay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}
	defer f.Close()
	return ReadPrices(f)
}

// ReadConsumption parses the consumption CSV. The source headers carry a
// survey-tool prefix and a year suffix which are stripped before lookup.
func ReadConsumption(r io.Reader) ([]Consumption, error) {
	rows, header, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("consumption: %w", err)
	}
	for i, h := range header {
		h = strings.ReplaceAll(h, "WhichCountryEatsTheMostChocolate_", "")
		header[i] = strings.ReplaceAll(h, "_2022", "")
	}
	country, err := column(header, "country")
	if err != nil {
		return nil, fmt.Errorf("consumption: %w", err)
	}
	tonnes, err := column(header, "ChocolateProductsNESConsumed_Tonnes")
	if err != nil {
		return nil, fmt.Errorf("consumption: %w", err)
	}
	perCap, err := column(header, "ConsumptionPerCap_GramsPerCapPerDay")
	if err != nil {
		return nil, fmt.Errorf("consumption: %w", err)
	}

	var rowsOut []Consumption
	for _, row := range rows {
		rowsOut = append(rowsOut, Consumption{
			Country:   strings.TrimSpace(row[country]),
			Tonnes:    parseNumber(row[tonnes]),
			PerCapita: parseNumber(row[perCap]),
		})
	}
	return rowsOut, nil
}

// LoadConsumption reads the consumption CSV from disk.
func LoadConsumption(path string) ([]Consumption, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("consumption: %w", err)
	}
	defer f.Close()
	return ReadConsumption(f)
}

// TopConsumers returns the n rows with the largest total consumption, in
// descending order. Rows with NaN totals sort last.
func TopConsumers(rows []Consumption, n int) []Consumption {
	sorted := make([]Consumption, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Tonnes, sorted[j].Tonnes
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		if math.IsNaN(a) {
			return false
		}
		return a > b
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// readTable reads a CSV stream into a header row plus data rows.
func readTable(r io.Reader) ([][]string, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty table")
	}
	return records[1:], records[0], nil
}

// column finds a header by exact name after trimming.
func column(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("missing column %q", name)
}

// parseNumber converts a cell to float64, stripping thousands separators.
// Unparseable cells become NaN, mirroring coercion in the source data.
func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
