package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Constellation is one constellation shape: the polylines joining its stars
// and the derived unique member set.
type Constellation struct {
	ID    string
	Lines [][]int // polylines of HIP identifiers
	Stars []int   // unique members, ascending
}

// Set holds everything read from a Stellarium SkyCultures index file.
type Set struct {
	// Constellations maps stripped ids to shapes. Ids beginning with "."
	// are diagram parts of their parent constellation.
	Constellations map[string]Constellation

	// MainIDs lists the non-part constellation ids in file order.
	MainIDs []string

	// Asterisms and Helpers are extra line figures; helper ids start
	// with "HR" in the source data.
	Asterisms map[string]Constellation
	Helpers   map[string]Constellation

	// NamedStars lists HIP identifiers that carry a common name.
	NamedStars []int
}

// skyCulture mirrors the parts of the Stellarium index.json we consume.
type skyCulture struct {
	Constellations []struct {
		ID    string  `json:"id"`
		Lines [][]int `json:"lines"`
	} `json:"constellations"`
	Asterisms []struct {
		ID    string  `json:"id"`
		Lines [][]int `json:"lines"`
	} `json:"asterisms"`
	CommonNames map[string]json.RawMessage `json:"common_names"`
}

// LoadConstellations reads a Stellarium SkyCultures index file. Entry ids
// carry a "CON <culture> " or "AST <culture> " prefix which is stripped.
func LoadConstellations(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open constellation index: %w", err)
	}

	var sc skyCulture
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode constellation index: %w", err)
	}

	set := &Set{
		Constellations: make(map[string]Constellation),
		Asterisms:      make(map[string]Constellation),
		Helpers:        make(map[string]Constellation),
	}

	for _, raw := range sc.Constellations {
		id := stripCultureID(raw.ID)
		con := Constellation{ID: id, Lines: raw.Lines, Stars: uniqueStars(raw.Lines)}
		set.Constellations[id] = con
		if !strings.HasPrefix(id, ".") {
			set.MainIDs = append(set.MainIDs, id)
		}
	}

	for _, raw := range sc.Asterisms {
		id := stripCultureID(raw.ID)
		con := Constellation{ID: id, Lines: raw.Lines, Stars: uniqueStars(raw.Lines)}
		if strings.HasPrefix(id, "HR") {
			set.Helpers[id] = con
		} else {
			set.Asterisms[id] = con
		}
	}

	for key := range sc.CommonNames {
		hipStr, ok := strings.CutPrefix(key, "HIP ")
		if !ok {
			continue
		}
		hip, err := strconv.Atoi(hipStr)
		if err != nil {
			return nil, fmt.Errorf("common name key %q: %w", key, err)
		}
		set.NamedStars = append(set.NamedStars, hip)
	}
	sort.Ints(set.NamedStars)

	if len(set.MainIDs) == 0 {
		return nil, fmt.Errorf("constellation index %s: no constellations", path)
	}
	return set, nil
}

// Parts returns the diagram-part ids belonging to a constellation.
func (s *Set) Parts(id string) []string {
	var parts []string
	for key := range s.Constellations {
		if strings.HasPrefix(key, "."+id) {
			parts = append(parts, key)
		}
	}
	sort.Strings(parts)
	return parts
}

// stripCultureID removes the "CON <culture> " or "AST <culture> " prefix,
// keeping anything after the second space so ids themselves may hold spaces.
func stripCultureID(id string) string {
	rest := id
	for i := 0; i < 2; i++ {
		if i := strings.IndexByte(rest, ' '); i >= 0 {
			rest = rest[i+1:]
		}
	}
	return rest
}

// uniqueStars flattens polylines into a sorted set of member ids.
func uniqueStars(lines [][]int) []int {
	seen := make(map[int]bool)
	var stars []int
	for _, line := range lines {
		for _, hip := range line {
			if !seen[hip] {
				seen[hip] = true
				stars = append(stars, hip)
			}
		}
	}
	sort.Ints(stars)
	return stars
}
