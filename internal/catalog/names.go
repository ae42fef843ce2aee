package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadNames reads the label-translation CSV. The first column holds ids
// (constellation ids, diagram-part ids, HIP numbers as strings); the header
// names one column per language. Literal "\n" sequences become newlines so
// labels can wrap on the cards.
func LoadNames(path, language string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open names file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("names file %s: empty", path)
	}

	header := rows[0]
	idCol, col := 0, -1
	for i, h := range header {
		h = strings.TrimSpace(h)
		if strings.EqualFold(h, "ID") {
			idCol = i
		}
		if strings.EqualFold(h, language) {
			col = i
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("names file %s: no %q column", path, language)
	}

	names := make(map[string]string, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) <= col || len(row) <= idCol {
			continue
		}
		id := strings.TrimSpace(row[idCol])
		if id == "" {
			continue
		}
		names[id] = strings.ReplaceAll(row[col], `\n`, "\n")
	}
	return names, nil
}
