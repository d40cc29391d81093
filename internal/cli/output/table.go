package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats data as an aligned table.
type TableFormatter struct {
	NoHeaders bool
}

// Format formats data as a table.
// Supports *Table, decoded JSON (objects, arrays of objects, scalars)
// and structs. Listings wrapped as {"items": [...]} are shown by item.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	if t, ok := data.(*Table); ok {
		return t.RenderWithOptions(w, f.NoHeaders)
	}

	table, err := toTable(data)
	if err != nil {
		return (&JSONFormatter{}).Format(w, data)
	}
	return table.RenderWithOptions(w, f.NoHeaders)
}

func toTable(data any) (*Table, error) {
	switch v := data.(type) {
	case map[string]any:
		if items, ok := v["items"].([]any); ok {
			return listToTable(items), nil
		}
		return mapToTable(v), nil
	case []any:
		return listToTable(v), nil
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		return structToTable(rv), nil
	}
	return nil, fmt.Errorf("unsupported type: %T", data)
}

// listToTable renders a list of objects with one column per key, or a
// list of scalars as a single VALUE column.
func listToTable(items []any) *Table {
	var keys []string
	seen := map[string]bool{}
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		for k := range m {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	if len(keys) == 0 {
		t := &Table{Headers: []string{"VALUE"}}
		for _, it := range items {
			t.AddRow(formatValue(it))
		}
		return t
	}

	sort.Strings(keys)
	t := &Table{}
	for _, k := range keys {
		t.Headers = append(t.Headers, strings.ToUpper(k))
	}
	for _, it := range items {
		m, _ := it.(map[string]any)
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = formatValue(m[k])
		}
		t.AddRow(row...)
	}
	return t
}

func mapToTable(m map[string]any) *Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &Table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range keys {
		t.AddRow(k, formatValue(m[k]))
	}
	return t
}

// structToTable converts a single struct to a field/value table.
func structToTable(v reflect.Value) *Table {
	t := &Table{Headers: []string{"FIELD", "VALUE"}}

	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
		}
		t.AddRow(name, formatValue(v.Field(i).Interface()))
	}
	return t
}

// formatValue renders one cell.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		if t == "" {
			return "-"
		}
		return t
	case json.Number:
		return t.String()
	case []string:
		if len(t) == 0 {
			return "-"
		}
		return strings.Join(t, ",")
	case []any:
		if len(t) == 0 {
			return "-"
		}
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = formatValue(e)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		if len(t) == 0 {
			return "-"
		}
		return fmt.Sprintf("{%d keys}", len(t))
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.String {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = rv.Index(i).String()
		}
		return formatValue(parts)
	}
	return fmt.Sprintf("%v", v)
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table with options.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
