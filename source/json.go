package source

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultSelector selects the elements of a top level array.
const DefaultSelector = "$[*]"

// JSON is a JSON document holding trade objects, one object per row.
//
// Selector is a JSONPath expression selecting the objects, for instance
// "$.trades[*]" for a document like {"trades": [{...}, {...}]}.
type JSON struct {
	Path     string
	Selector string // Defaults to DefaultSelector.
}

// ReadTable reads the file and selects the records.
//
// The header is the union of the object keys: keys are listed in order of
// first appearance, and alphabetically within the object they first appear in.
func (j *JSON) ReadTable() (*Table, error) {
	f, err := os.Open(j.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open trades file %q: %w", j.Path, err)
	}
	defer f.Close()

	var doc any
	dec := json.NewDecoder(f)
	dec.UseNumber() // keep numbers as written
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode trades file %q: %w", j.Path, err)
	}

	selector := j.Selector
	if selector == "" {
		selector = DefaultSelector
	}
	jval, err := jsonpath.Get(selector, doc)
	if err != nil {
		return nil, fmt.Errorf("error selecting %q in %q: %w", selector, j.Path, err)
	}
	// jsonpath returns a single answer for definite paths and a list otherwise.
	objects, ok := jval.([]any)
	if !ok {
		objects = []any{jval}
	}

	var header []string
	index := make(map[string]int)
	records := make([]map[string]any, 0, len(objects))
	for i, o := range objects {
		obj, ok := o.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d selected by %q is not an object", i, selector)
		}
		for _, k := range slices.Sorted(maps.Keys(obj)) {
			if _, exists := index[k]; !exists {
				index[k] = len(header)
				header = append(header, k)
			}
		}
		records = append(records, obj)
	}

	rows := make([][]string, 0, len(records))
	for _, obj := range records {
		row := make([]string, len(header))
		for k, v := range obj {
			row[index[k]] = jsonText(v)
		}
		rows = append(rows, row)
	}
	return newTable(j.Path, header, rows), nil
}

// jsonText returns the cell text of a decoded JSON value.
func jsonText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}
