package climate

import (
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// MetadataRecord is the provenance entry collected for one variable of one
// source file.
type MetadataRecord struct {
	// Identity
	FileName string
	VarName  string

	// Attribute metadata as declared in the source file (units, long_name
	// and the like), in declared order.
	Attrs api.AttributeMap
}

// GroupResult is the outcome of merging one prefix group. Exactly one of
// OutputPath or Err is meaningful: a group either produced an artifact or
// failed with a reason.
type GroupResult struct {
	Prefix     string
	Files      []string
	OutputPath string
	Records    []MetadataRecord
	Err        error
}
