package climate

import (
	"fmt"
	"io"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// WriteReport renders the human-readable report for a merge run: for each
// successfully combined group, the output path followed by every metadata
// record in accumulation order. Failed groups are skipped; their reasons are
// already on the error path.
func WriteReport(w io.Writer, results []GroupResult) error {
	var sb strings.Builder
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		groupToText(&sb, &results[i])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func groupToText(sb *strings.Builder, res *GroupResult) {
	fmt.Fprintf(sb, "Combined dataset for prefix '%s' saved to: %s\n", res.Prefix, res.OutputPath)
	sb.WriteString("Extracted Metadata:\n")
	for i := range res.Records {
		recToText(sb, &res.Records[i])
		sb.WriteString("\n")
	}
}

// recToText renders one metadata record in the report's dict-literal form
// and appends it to the string builder.
func recToText(sb *strings.Builder, rec *MetadataRecord) {
	fmt.Fprintf(sb, "{'file_name': '%s', 'variable_name': '%s', 'attributes': ", rec.FileName, rec.VarName)
	attrsToText(sb, rec.Attrs)
	sb.WriteString("}")
}

func attrsToText(sb *strings.Builder, attrs api.AttributeMap) {
	sb.WriteString("{")
	if attrs != nil {
		for i, key := range attrs.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "'%s': ", key)
			v, _ := attrs.Get(key)
			valueToText(sb, v)
		}
	}
	sb.WriteString("}")
}

func valueToText(sb *strings.Builder, v any) {
	switch t := v.(type) {
	case string:
		fmt.Fprintf(sb, "'%s'", t)
	default:
		fmt.Fprintf(sb, "%v", t)
	}
}
