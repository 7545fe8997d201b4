package radar

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Unit is the speed unit readings are shown and reported in.
type Unit string

const (
	CentimetersPerSecond Unit = "cm/s"
	KilometersPerHour    Unit = "km/h"
	MilesPerHour         Unit = "mph"
)

var ErrUnit = errors.New("radar: unknown unit")

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cm/s", "cms":
		return CentimetersPerSecond, nil
	case "km/h", "kmh", "kph":
		return KilometersPerHour, nil
	case "mph", "mi/h":
		return MilesPerHour, nil
	}
	return "", errors.Wrap(ErrUnit, s)
}

// Convert returns v in u.
func (u Unit) Convert(v Velocity) float64 {
	switch u {
	case KilometersPerHour:
		return float64(v) * 0.036
	case MilesPerHour:
		return float64(v) / 44.704
	}
	return float64(v)
}

// Format renders v for the display, without the unit suffix.
func (u Unit) Format(v Velocity) string {
	if u == KilometersPerHour || u == MilesPerHour {
		return fmt.Sprintf("%.1f", u.Convert(v))
	}
	return fmt.Sprintf("%d", v)
}
