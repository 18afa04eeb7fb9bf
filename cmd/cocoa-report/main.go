// Command cocoa-report loads the cocoa production and daily futures-price
// series, computes the descriptive statistics behind the dashboard (means,
// growth, production/price correlations, monthly means, seasonal
// decomposition), and writes them to a spreadsheet workbook.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/kbrou/cocoaclim/internal/cocoa"
)

var (
	productionPath = flag.String("production", "src/data/cocoa-data.csv", "path to the seasonal production CSV")
	pricesPath     = flag.String("prices", "src/data/Daily Prices.csv", "path to the daily futures prices CSV")
	out            = flag.String("out", "cocoa-report.xlsx", "path of the workbook to write")
	period         = flag.Int("period", 12, "seasonal decomposition period in months")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	seasons, err := cocoa.LoadSeasons(*productionPath)
	if err != nil {
		logger.Error("Could not load production data", "err", err)
		os.Exit(1)
	}
	prices, err := cocoa.LoadPrices(*pricesPath)
	if err != nil {
		logger.Error("Could not load price data", "err", err)
		os.Exit(1)
	}

	report := &cocoa.Report{Seasons: seasons, Prices: prices, Period: *period}
	s := report.Summarize()
	logger.Info("cocoa summary",
		"seasons", len(seasons),
		"tradingDays", len(prices),
		"meanProduction", s.MeanProduction,
		"meanICCO", s.MeanICCO,
		"corrICCO", s.CorrICCO,
		"corrLondon", s.CorrLondon,
		"corrNewYork", s.CorrNewYork,
	)

	if err := report.WriteWorkbook(*out); err != nil {
		logger.Error("Could not write workbook", "err", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", *out)
}
