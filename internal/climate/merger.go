package climate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options configure a merge run. Zero values are not usable; callers fill
// them from config.Default or flags.
type Options struct {
	InputDir  string
	OutputDir string
	Extension string // recognized dataset suffix, e.g. ".nc"
	JoinAxis  string // ordinal dimension joined along, e.g. "time"

	// ContinueOnError keeps processing remaining groups after a failure.
	// Off by default: the first failed group aborts the run.
	ContinueOnError bool
}

// Merger scans a directory of NetCDF files, groups them by filename prefix
// and concatenates each group along the join axis into one combined artifact.
type Merger struct {
	logger *slog.Logger
	opts   Options
}

// NewMerger creates a merger with the given options.
func NewMerger(logger *slog.Logger, opts Options) *Merger {
	return &Merger{logger: logger, opts: opts}
}

// Prefix returns the grouping key for a dataset filename: the token before
// the first underscore, or the full stem when there is none.
func Prefix(name string) string {
	if i := strings.Index(name, "_"); i >= 0 {
		return name[:i]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Run performs a single merge pass over the input directory. It returns one
// GroupResult per prefix group, in first-seen order. Unless ContinueOnError
// is set, the first failed group ends the run; results for groups already
// processed are still returned and their artifacts remain on disk.
func (m *Merger) Run() ([]GroupResult, error) {
	files, err := m.discover()
	if err != nil {
		return nil, err
	}
	groups, order := groupByPrefix(files)
	m.logger.Info("discovered datasets", "files", len(files), "groups", len(order), "dir", m.opts.InputDir)

	if err := os.MkdirAll(m.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	var results []GroupResult
	for _, prefix := range order {
		res := m.mergeGroup(prefix, groups[prefix])
		results = append(results, res)
		if res.Err != nil {
			m.logger.Error("group failed", "prefix", prefix, "err", res.Err)
			if !m.opts.ContinueOnError {
				return results, res.Err
			}
			continue
		}
		m.logger.Info("group combined", "prefix", prefix, "files", len(res.Files), "records", len(res.Records), "out", res.OutputPath)
	}
	return results, nil
}

// discover lists the recognized dataset files directly inside the input
// directory, in directory listing order. Subdirectories are not entered.
func (m *Merger) discover() ([]string, error) {
	entries, err := os.ReadDir(m.opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan input dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), m.opts.Extension) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// groupByPrefix partitions filenames into prefix groups, returning the
// groups plus prefixes in first-seen order.
func groupByPrefix(files []string) (map[string][]string, []string) {
	groups := map[string][]string{}
	var order []string
	for _, f := range files {
		p := Prefix(f)
		if _, ok := groups[p]; !ok {
			order = append(order, p)
		}
		groups[p] = append(groups[p], f)
	}
	return groups, order
}

// mergeGroup runs the per-group pipeline: open every file, collect metadata,
// concatenate, derive the output name and persist. All handles stay open
// until the combined artifact is written.
func (m *Merger) mergeGroup(prefix string, names []string) GroupResult {
	res := GroupResult{Prefix: prefix, Files: names}

	var datasets []*Dataset
	defer func() {
		for _, d := range datasets {
			d.Close()
		}
	}()

	for _, name := range names {
		d, err := OpenDataset(filepath.Join(m.opts.InputDir, name))
		if err != nil {
			res.Err = err
			return res
		}
		datasets = append(datasets, d)
		for _, v := range d.DataVars() {
			vg, err := d.Var(v)
			if err != nil {
				res.Err = err
				return res
			}
			res.Records = append(res.Records, MetadataRecord{
				FileName: d.Name(),
				VarName:  v,
				Attrs:    vg.Attributes(),
			})
		}
	}

	combined, err := Concat(datasets, m.opts.JoinAxis)
	if err != nil {
		res.Err = fmt.Errorf("group %q: %w", prefix, err)
		return res
	}
	res.OutputPath = m.outputPath(prefix, res.Records)
	if err := combined.WriteCDF(res.OutputPath); err != nil {
		res.Err = err
		return res
	}
	return res
}

// outputPath derives the artifact name from the prefix and the first data
// variable recorded for the group. Groups without data variables fall back
// to a generic climate-data name.
func (m *Merger) outputPath(prefix string, recs []MetadataRecord) string {
	name := fmt.Sprintf("combined_%s_climate_data%s", prefix, m.opts.Extension)
	if len(recs) > 0 {
		name = fmt.Sprintf("combined_%s_%s_data%s", prefix, recs[0].VarName, m.opts.Extension)
	}
	return filepath.Join(m.opts.OutputDir, name)
}
