package climate

import (
	"fmt"
	"reflect"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/cdf"
)

// Combined is the in-memory concatenation of a group of datasets along the
// join axis. It exists only between Concat and WriteCDF.
type Combined struct {
	names []string
	vars  map[string]api.Variable
}

// Concat joins the datasets along the named axis, in the order given.
// Variables whose leading dimension is the axis are appended file by file;
// everything else (coordinates, axis-free variables) is carried from the
// first dataset. No alignment or sorting is performed: values are joined
// strictly by position.
func Concat(datasets []*Dataset, axis string) (*Combined, error) {
	if len(datasets) == 0 {
		return nil, fmt.Errorf("concat: empty group")
	}
	first := datasets[0]
	c := &Combined{vars: map[string]api.Variable{}}
	for _, name := range first.vars {
		vg, err := first.Var(name)
		if err != nil {
			return nil, err
		}
		dims := vg.Dimensions()
		vals, err := vg.Values()
		if err != nil {
			return nil, fmt.Errorf("read %q from %s: %w", name, first.Name(), err)
		}
		if len(dims) > 0 && dims[0] == axis {
			for _, ds := range datasets[1:] {
				ovg, err := ds.Var(name)
				if err != nil {
					return nil, err
				}
				ovals, err := ovg.Values()
				if err != nil {
					return nil, fmt.Errorf("read %q from %s: %w", name, ds.Name(), err)
				}
				vals, err = appendAlongAxis(vals, ovals)
				if err != nil {
					return nil, fmt.Errorf("concat %q with %s: %w", name, ds.Name(), err)
				}
			}
		}
		c.names = append(c.names, name)
		c.vars[name] = api.Variable{
			Values:     vals,
			Dimensions: dims,
			Attributes: vg.Attributes(),
		}
	}
	return c, nil
}

// appendAlongAxis joins two variable value blocks along their leading
// dimension. The blocks must be slices of the same element type; inner
// lengths are not checked.
func appendAlongAxis(a, b any) (any, error) {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Kind() != reflect.Slice || vb.Kind() != reflect.Slice {
		return nil, fmt.Errorf("values are not indexed by the join axis")
	}
	if va.Type() != vb.Type() {
		return nil, fmt.Errorf("incompatible value types %s and %s", va.Type(), vb.Type())
	}
	return reflect.AppendSlice(va, vb).Interface(), nil
}

// Var returns the combined variable with the given name.
func (c *Combined) Var(name string) (api.Variable, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Vars lists the combined variables in write order.
func (c *Combined) Vars() []string {
	return c.names
}

// WriteCDF persists the combined dataset as a classic-format NetCDF file.
func (c *Combined) WriteCDF(path string) error {
	cw, err := cdf.OpenWriter(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	for _, name := range c.names {
		if err := cw.AddVar(name, c.vars[name]); err != nil {
			cw.Close()
			return fmt.Errorf("write %q to %s: %w", name, path, err)
		}
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
