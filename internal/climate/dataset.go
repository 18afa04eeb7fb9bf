package climate

import (
	"fmt"
	"path/filepath"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// Dataset is an open handle to a single NetCDF source file.
type Dataset struct {
	path string
	nc   api.Group
	vars []string        // every variable, in declared order
	dims map[string]bool // dimension names referenced by any variable
}

// OpenDataset opens a NetCDF file and inspects its variables and dimensions.
// The caller owns the handle and must Close it.
func OpenDataset(path string) (*Dataset, error) {
	nc, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	d := &Dataset{path: path, nc: nc, dims: map[string]bool{}}
	d.vars = nc.ListVariables()
	for _, name := range d.vars {
		vg, err := nc.GetVarGetter(name)
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("inspect %q in %s: %w", name, path, err)
		}
		for _, dim := range vg.Dimensions() {
			d.dims[dim] = true
		}
	}
	return d, nil
}

// Name returns the base name of the source file.
func (d *Dataset) Name() string {
	return filepath.Base(d.path)
}

// DataVars lists the non-coordinate variables in declared order. A variable
// whose name doubles as a dimension name (time, latitude, longitude) is a
// coordinate, not data.
func (d *Dataset) DataVars() []string {
	var names []string
	for _, name := range d.vars {
		if !d.dims[name] {
			names = append(names, name)
		}
	}
	return names
}

// Var returns a getter for the named variable.
func (d *Dataset) Var(name string) (api.VarGetter, error) {
	vg, err := d.nc.GetVarGetter(name)
	if err != nil {
		return nil, fmt.Errorf("variable %q in %s: %w", name, d.path, err)
	}
	return vg, nil
}

// Close closes the underlying file handle.
func (d *Dataset) Close() {
	d.nc.Close()
}
