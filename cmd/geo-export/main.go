// Command geo-export prepares a GeoJSON layer for downstream use: it can
// join tabular values onto features, simplify geometries, reproject to Web
// Mercator, and write the result back out.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/kbrou/cocoaclim/internal/geo"
)

var (
	in        = flag.String("in", "", "input GeoJSON file")
	out       = flag.String("out", "", "output GeoJSON file")
	joinCSV   = flag.String("join", "", "optional CSV of values to join onto features")
	joinKey   = flag.String("join-key", "", "property name shared by features and the CSV")
	tolerance = flag.Float64("tolerance", 0.01, "simplification tolerance in degrees (0 disables)")
	mercator  = flag.Bool("mercator", false, "reproject to Web Mercator")
)

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if *in == "" || *out == "" {
		logger.Error("Both -in and -out are required")
		os.Exit(1)
	}

	fc, err := geo.Load(*in)
	if err != nil {
		logger.Error("Could not load GeoJSON", "err", err)
		os.Exit(1)
	}
	logger.Info("layer loaded", "path", *in, "features", len(fc.Features))

	if *joinCSV != "" {
		if *joinKey == "" {
			logger.Error("-join requires -join-key")
			os.Exit(1)
		}
		rows, err := geo.LoadTable(*joinCSV)
		if err != nil {
			logger.Error("Could not load join table", "err", err)
			os.Exit(1)
		}
		matched := geo.Join(fc, rows, *joinKey)
		logger.Info("table joined", "rows", len(rows), "matched", matched, "key", *joinKey)
	}

	if *tolerance > 0 {
		geo.Simplify(fc, *tolerance)
	}
	if *mercator {
		geo.ToWebMercator(fc)
	}

	if err := geo.Export(fc, *out); err != nil {
		logger.Error("Could not write GeoJSON", "err", err)
		os.Exit(1)
	}
	logger.Info("layer written", "path", *out)
}
