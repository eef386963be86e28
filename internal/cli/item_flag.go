package cli

import (
	"fmt"
	"strings"

	"github.com/mariaiw8/apontamentos/internal/rationing"
	"github.com/spf13/pflag"
)

// itemsFlag collects repeated --item SKU:QTY[:OP[:DESC]] values as raw form
// rows. Quantities stay text so that rationing.Retain applies the same
// rules as the interactive form.
type itemsFlag struct {
	rows []rationing.Row
}

var _ pflag.Value = (*itemsFlag)(nil)

func (f *itemsFlag) String() string {
	parts := make([]string, len(f.rows))
	for i, r := range f.rows {
		parts[i] = r.SKU + ":" + r.Quantity
	}
	return strings.Join(parts, ",")
}

func (f *itemsFlag) Set(v string) error {
	fields := strings.SplitN(v, ":", 4)
	if len(fields) < 2 {
		return fmt.Errorf("item %q must be SKU:QTY[:OP[:DESCRIPTION]]", v)
	}
	row := rationing.Row{SKU: fields[0], Quantity: fields[1]}
	if len(fields) > 2 {
		row.OrderRef = fields[2]
	}
	if len(fields) > 3 {
		row.Description = fields[3]
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *itemsFlag) Type() string {
	return "SKU:QTY[:OP[:DESC]]"
}
