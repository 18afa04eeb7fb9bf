// Package geo prepares the Côte d'Ivoire GeoJSON layers for downstream use:
// loading, joining tabular values onto features, simplification, and
// reprojection. It does no rendering.
package geo

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/orb/simplify"
)

// Load reads a GeoJSON FeatureCollection from disk.
func Load(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geojson: read %s: %w", path, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: decode %s: %w", path, err)
	}
	return fc, nil
}

// Export writes a FeatureCollection back to disk as GeoJSON.
func Export(fc *geojson.FeatureCollection, path string) error {
	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("geojson: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("geojson: write %s: %w", path, err)
	}
	return nil
}

// Row is one record of a tabular dataset keyed by column name. Numeric cells
// are float64, everything else string.
type Row map[string]any

// ReadTable parses a CSV stream into rows, converting numeric cells.
func ReadTable(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table: empty")
	}
	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := Row{}
		for i, cell := range rec {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			if v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64); err == nil {
				row[strings.TrimSpace(header[i])] = v
			} else {
				row[strings.TrimSpace(header[i])] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadTable reads a CSV table from disk.
func LoadTable(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer f.Close()
	return ReadTable(f)
}

// Join left-joins rows onto features by the shared property key: a feature
// whose key property equals a row's key cell receives that row's remaining
// columns as properties. Unmatched features are left untouched. Returns the
// number of features that matched.
func Join(fc *geojson.FeatureCollection, rows []Row, key string) int {
	index := map[string]Row{}
	for _, row := range rows {
		if v, ok := row[key]; ok {
			index[cellKey(v)] = row
		}
	}
	matched := 0
	for _, feat := range fc.Features {
		v, ok := feat.Properties[key]
		if !ok {
			continue
		}
		row, ok := index[cellKey(v)]
		if !ok {
			continue
		}
		for col, val := range row {
			if col == key {
				continue
			}
			feat.Properties[col] = val
		}
		matched++
	}
	return matched
}

// cellKey normalizes join values so a numeric property matches a numeric
// cell regardless of representation.
func cellKey(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Simplify reduces geometry detail in place with the Douglas-Peucker
// algorithm at the given tolerance.
func Simplify(fc *geojson.FeatureCollection, tolerance float64) {
	s := simplify.DouglasPeucker(tolerance)
	for _, feat := range fc.Features {
		feat.Geometry = s.Simplify(feat.Geometry)
	}
}

// ToWebMercator reprojects feature geometries from WGS84 to Web Mercator
// in place.
func ToWebMercator(fc *geojson.FeatureCollection) {
	for _, feat := range fc.Features {
		feat.Geometry = project.Geometry(feat.Geometry, project.WGS84.ToMercator)
	}
}
