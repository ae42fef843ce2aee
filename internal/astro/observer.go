package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Observer represents a ground-based observer: a geographic position and an
// observation instant. Position is immutable after construction; the instant
// may be re-set with AtTimeUTC or AtTime.
type Observer struct {
	lat float64 // radians, north positive
	lon float64 // radians, east positive
	utc time.Time
}

// NewObserver creates an observer from positions in the "DD.DDDD {N|S}" /
// "DD.DDDD {E|O}" notation. 'S' and 'O' (west) negate the magnitude.
func NewObserver(lat, lon string) (*Observer, error) {
	latRad, err := ParseAngle(lat, 'N', 'S')
	if err != nil {
		return nil, fmt.Errorf("parse latitude: %w", err)
	}
	lonRad, err := ParseAngle(lon, 'E', 'O')
	if err != nil {
		return nil, fmt.Errorf("parse longitude: %w", err)
	}
	return &Observer{lat: latRad, lon: lonRad}, nil
}

// ParseAngle parses a "DD.DDDD X" string where X is the positive or negative
// suffix, returning signed radians.
func ParseAngle(s string, pos, neg byte) (float64, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("angle %q: too short", s)
	}
	suffix := s[len(s)-1]
	deg, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
	if err != nil {
		return 0, fmt.Errorf("angle %q: %w", s, err)
	}
	switch suffix {
	case pos:
		return degToRad(deg), nil
	case neg:
		return -degToRad(deg), nil
	}
	return 0, fmt.Errorf("angle %q: unknown suffix %q", s, string(suffix))
}

// AtTimeUTC sets the observation instant directly in UTC.
func (o *Observer) AtTimeUTC(t time.Time) {
	o.utc = t.UTC()
}

// AtTime sets the observation instant from a naive local wall-clock time and
// an IANA timezone name. Only the calendar fields of wall are used; its
// location is ignored. During a fall-back overlap the same wall clock maps to
// two instants: dst selects the earlier (summer-offset) one.
func (o *Observer) AtTime(wall time.Time, tz string, dst bool) error {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", tz, err)
	}

	y, mo, d := wall.Date()
	h, mi, s := wall.Clock()
	t := time.Date(y, mo, d, h, mi, s, wall.Nanosecond(), loc)

	// Probe the offsets in effect around the requested time. Each offset that
	// maps the wall clock back to itself is a valid reading of the input.
	guess := time.Date(y, mo, d, h, mi, s, wall.Nanosecond(), time.UTC)
	var candidates []time.Time
	seen := map[int]bool{}
	for _, probe := range []time.Time{guess.Add(-12 * time.Hour), guess.Add(12 * time.Hour)} {
		_, offset := probe.In(loc).Zone()
		if seen[offset] {
			continue
		}
		seen[offset] = true
		cand := guess.Add(-time.Duration(offset) * time.Second)
		local := cand.In(loc)
		ly, lmo, ld := local.Date()
		lh, lmi, ls := local.Clock()
		if ly == y && lmo == mo && ld == d && lh == h && lmi == mi && ls == s {
			candidates = append(candidates, cand)
		}
	}

	if len(candidates) == 2 {
		earlier, later := candidates[0], candidates[1]
		if later.Before(earlier) {
			earlier, later = later, earlier
		}
		if dst {
			o.utc = earlier
		} else {
			o.utc = later
		}
		return nil
	}
	o.utc = t.UTC()
	return nil
}

// Lat returns the latitude in signed radians (north positive).
func (o *Observer) Lat() float64 { return o.lat }

// Lon returns the longitude in signed radians (east positive).
func (o *Observer) Lon() float64 { return o.lon }

// Time returns the observation instant in UTC.
func (o *Observer) Time() time.Time { return o.utc }

func (o *Observer) String() string {
	latSuffix, lonSuffix := "N", "E"
	if o.lat < 0 {
		latSuffix = "S"
	}
	if o.lon < 0 {
		lonSuffix = "O"
	}
	return fmt.Sprintf("%.4f %s, %.4f %s at %s UTC",
		math.Abs(radToDeg(o.lat)), latSuffix,
		math.Abs(radToDeg(o.lon)), lonSuffix,
		o.utc.Format("02-01-2006 15:04"))
}
