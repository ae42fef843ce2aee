// Package catalog loads the star catalogue and the constellation dataset and
// keeps them as an immutable, column-oriented snapshot for the chart code.
package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/litescript/ls-starcards/internal/astro"
)

// Hipparcos main-file column indexes of the fields we read.
const (
	colHIP = 1
	colRA  = 3
	colDec = 4
	colMag = 5
	colBV  = 37
)

// Catalog is a column-oriented star table. All columns have equal length and
// the whole table is read-only after loading; the framing and map code
// projects entire columns at once.
type Catalog struct {
	HIP   []int
	RA    []float64 // degrees, [0, 360)
	Dec   []float64 // degrees, [-90, 90]
	Mag   []float64 // apparent visual magnitude
	BV    []float64 // B-V color index
	Size  []float64 // display-size scalar from the magnitude
	Class []int     // marker class, 0 (brightest) to 6

	// Constellation holds the owning constellation id per star, or "" for
	// background stars. Populated by Annotate.
	Constellation []string

	byHIP map[int]int
}

// Len returns the number of catalogued stars.
func (c *Catalog) Len() int { return len(c.HIP) }

// Row returns the table row index of a HIP identifier.
func (c *Catalog) Row(hip int) (int, bool) {
	i, ok := c.byHIP[hip]
	return i, ok
}

// LoadStars reads a Hipparcos main catalogue file (pipe-separated). Only the
// identifier, position, magnitude and color-index fields are used; rows
// missing a magnitude or a color index are dropped, as the display pipeline
// needs both.
func LoadStars(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open star catalogue: %w", err)
	}
	defer f.Close()

	cat := &Catalog{byHIP: make(map[int]int)}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Split(scanner.Text(), "|")
		if len(fields) <= colBV {
			continue
		}

		magStr := strings.TrimSpace(fields[colMag])
		bvStr := strings.TrimSpace(fields[colBV])
		if magStr == "" || bvStr == "" {
			continue
		}

		hip, err := strconv.Atoi(strings.TrimSpace(fields[colHIP]))
		if err != nil {
			return nil, fmt.Errorf("line %d: HIP id: %w", line, err)
		}
		mag, err := strconv.ParseFloat(magStr, 64)
		if err != nil {
			continue
		}
		bv, err := strconv.ParseFloat(bvStr, 64)
		if err != nil {
			continue
		}
		ra, err := parseRA(fields[colRA])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		dec, err := parseDec(fields[colDec])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		cat.byHIP[hip] = len(cat.HIP)
		cat.HIP = append(cat.HIP, hip)
		cat.RA = append(cat.RA, ra)
		cat.Dec = append(cat.Dec, dec)
		cat.Mag = append(cat.Mag, mag)
		cat.BV = append(cat.BV, bv)
		cat.Size = append(cat.Size, astro.MagToSize(mag, astro.DefaultMagStep))
		cat.Class = append(cat.Class, astro.MagClass(mag))
		cat.Constellation = append(cat.Constellation, "")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read star catalogue: %w", err)
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("star catalogue %s: no usable rows", path)
	}
	return cat, nil
}

// parseRA converts a sexagesimal "HH MM SS.SS" right ascension to degrees.
func parseRA(s string) (float64, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return 0, fmt.Errorf("right ascension %q: want 3 fields", s)
	}
	weights := [3]float64{15, 1.0 / 4, 1.0 / 240}
	var deg float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("right ascension %q: %w", s, err)
		}
		deg += weights[i] * v
	}
	return deg, nil
}

// parseDec converts a "+DD MM SS.S" declination, sign first, to degrees.
func parseDec(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("declination: empty field")
	}
	neg := s[0] == '-'
	parts := strings.Fields(s[1:])
	if len(parts) != 3 {
		return 0, fmt.Errorf("declination %q: want 3 fields", s)
	}
	weights := [3]float64{1, 1.0 / 60, 1.0 / 3600}
	var deg float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, fmt.Errorf("declination %q: %w", s, err)
		}
		deg += weights[i] * v
	}
	if neg {
		deg = -deg
	}
	return deg, nil
}

// Annotate marks every member star of every constellation shape with its
// owning constellation id. Stars absent from the table are skipped: the
// drawing code never dereferences them.
func (c *Catalog) Annotate(set *Set) {
	for id, con := range set.Constellations {
		if strings.HasPrefix(id, ".") {
			continue // diagram parts do not own stars
		}
		for _, hip := range con.Stars {
			if i, ok := c.byHIP[hip]; ok {
				c.Constellation[i] = id
			}
		}
	}
}

// MemberRows returns the table rows belonging to a constellation shape, in
// table order.
func (c *Catalog) MemberRows(id string) []int {
	var rows []int
	for i, con := range c.Constellation {
		if con == id {
			rows = append(rows, i)
		}
	}
	return rows
}

// DecRange returns the southernmost and northernmost declination among the
// given table rows.
func (c *Catalog) DecRange(rows []int) (south, north float64) {
	south, north = 90, -90
	for _, i := range rows {
		if c.Dec[i] < south {
			south = c.Dec[i]
		}
		if c.Dec[i] > north {
			north = c.Dec[i]
		}
	}
	return south, north
}
