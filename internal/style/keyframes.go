package style

import (
	"fmt"
	"strings"
)

// Keyframe is one step of a keyframes rule.
type Keyframe struct {
	Offset       string
	Declarations Declarations
}

// Keyframes is a named @keyframes rule.
type Keyframes struct {
	Name  string
	Steps []Keyframe
}

func (k Keyframes) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {", k.Name)
	for _, step := range k.Steps {
		fmt.Fprintf(&b, " %s { %s; }", step.Offset, step.Declarations)
	}
	b.WriteString(" }")
	return b.String()
}

const (
	// GridAnimationName is the keyframes rule the grid layer animates with.
	GridAnimationName = "move"
	// GridLineWidth is the thickness of every grid line, in px.
	GridLineWidth = 1
	// GridSpacing is the repeat interval of the grid pattern, in px.
	GridSpacing = 40
)

// GridTranslation moves the background by exactly one repeat interval on both
// axes, which makes the loop seamless.
func GridTranslation() Keyframes {
	return Keyframes{
		Name: GridAnimationName,
		Steps: []Keyframe{
			{Offset: "0%", Declarations: Declarations{{"background-position", "0 0"}}},
			{Offset: "100%", Declarations: Declarations{{"background-position", fmt.Sprintf("%dpx %dpx", GridSpacing, GridSpacing)}}},
		},
	}
}
