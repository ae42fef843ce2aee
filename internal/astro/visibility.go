package astro

import (
	"fmt"
	"strconv"
	"strings"
)

// Visibility classifies how much of a constellation an observer at a given
// latitude can ever see, assuming an unobstructed horizon.
type Visibility int

const (
	NotVisible Visibility = iota
	PartlyVisible
	Visible
	Circumpolar
)

func (v Visibility) String() string {
	switch v {
	case NotVisible:
		return "not visible"
	case PartlyVisible:
		return "partly visible"
	case Visible:
		return "visible"
	case Circumpolar:
		return "circumpolar"
	default:
		return "unknown"
	}
}

// Classify determines visibility from the observer latitude (signed degrees)
// and the declinations of a constellation's southernmost and northernmost
// stars. southDec > northDec is a caller contract violation.
//
// The checks run in a fixed order: entirely outside the visibility band,
// inside the circumpolar cap, inside the band, then straddling a boundary.
// The boundary conditions are not mutually exclusive under floating-point
// equality, so the order is part of the contract.
func Classify(latDeg, southDec, northDec float64) Visibility {
	northBound := min(latDeg+90, 90)
	southBound := max(latDeg-90, -90)

	circBound := 90 - latDeg
	if latDeg < 0 {
		circBound = -90 - latDeg
	}

	switch {
	case southDec >= northBound || northDec <= southBound:
		return NotVisible
	case (latDeg >= 0 && southDec >= circBound) || (latDeg < 0 && northDec <= circBound):
		return Circumpolar
	case (latDeg >= 0 && southDec >= southBound) || (latDeg < 0 && northDec <= northBound):
		return Visible
	default:
		return PartlyVisible
	}
}

// IsVisible classifies visibility from a latitude string such as "45 N",
// where 'S' negates the magnitude.
func IsVisible(latStr string, southDec, northDec float64) (Visibility, error) {
	latStr = strings.TrimSpace(latStr)
	if len(latStr) < 2 {
		return 0, fmt.Errorf("latitude %q: too short", latStr)
	}
	mag, err := strconv.ParseFloat(strings.TrimSpace(latStr[:len(latStr)-1]), 64)
	if err != nil {
		return 0, fmt.Errorf("latitude %q: %w", latStr, err)
	}
	lat := mag
	if latStr[len(latStr)-1] != 'N' {
		lat = -mag
	}
	return Classify(lat, southDec, northDec), nil
}
