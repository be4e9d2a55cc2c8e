// Package style builds the inline CSS declarations and keyframe rules the
// components emit. Values are written verbatim; nothing here validates CSS.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an ordered list of CSS declarations, suitable for a style attribute.
type Declarations []Declaration

func (d Declarations) String() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		parts = append(parts, fmt.Sprintf("%s: %s", decl.Property, decl.Value))
	}
	return strings.Join(parts, "; ")
}

// Get returns the value of the first declaration for property.
func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Number formats f in its shortest form, so 15 renders as "15" and 0.9 as "0.9".
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Seconds formats a duration given in seconds as a CSS time value.
func Seconds(f float64) string {
	return Number(f) + "s"
}

// Animation is the CSS animation shorthand.
type Animation struct {
	Name      string
	Duration  float64 // seconds
	Timing    string
	Iteration string
}

func (a Animation) String() string {
	return fmt.Sprintf("%s %s %s %s", a.Name, Seconds(a.Duration), a.Timing, a.Iteration)
}

// LineGradient renders a 1px hard-stop line running in direction, transparent elsewhere.
func LineGradient(direction, color string, width int) string {
	return fmt.Sprintf("linear-gradient(%s, %s %dpx, transparent %dpx)", direction, color, width, width)
}
