package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/emergentai/gridhero/internal/style"
)

// Background defaults, used for every option the caller leaves out.
const (
	DefaultOverlayColor      = "white"
	DefaultOverlayOpacity    = 0.9
	DefaultGridColor         = "#f1f1f1"
	DefaultAnimationDuration = 15.0 // seconds
)

// BackgroundConfig holds the styling parameters of AnimatedBackground.
// Values are passed through to CSS as-is.
type BackgroundConfig struct {
	OverlayColor      string
	OverlayOpacity    float64
	GridColor         string
	AnimationDuration float64 // seconds per loop
}

type BackgroundOption func(*BackgroundConfig)

func WithOverlayColor(color string) BackgroundOption {
	return func(c *BackgroundConfig) { c.OverlayColor = color }
}

func WithOverlayOpacity(opacity float64) BackgroundOption {
	return func(c *BackgroundConfig) { c.OverlayOpacity = opacity }
}

func WithGridColor(color string) BackgroundOption {
	return func(c *BackgroundConfig) { c.GridColor = color }
}

func WithAnimationDuration(seconds float64) BackgroundOption {
	return func(c *BackgroundConfig) { c.AnimationDuration = seconds }
}

// ResolveBackground applies opts on top of the defaults.
func ResolveBackground(opts ...BackgroundOption) BackgroundConfig {
	config := BackgroundConfig{
		OverlayColor:      DefaultOverlayColor,
		OverlayOpacity:    DefaultOverlayOpacity,
		GridColor:         DefaultGridColor,
		AnimationDuration: DefaultAnimationDuration,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// OverlayStyle is the inline style of the lower, translucent layer.
func (c BackgroundConfig) OverlayStyle() style.Declarations {
	return style.Declarations{
		{Property: "background-color", Value: c.OverlayColor},
		{Property: "opacity", Value: style.Number(c.OverlayOpacity)},
	}
}

// GridStyle is the inline style of the upper, animated layer.
func (c BackgroundConfig) GridStyle() style.Declarations {
	return style.Declarations{
		{Property: "background-image", Value: style.LineGradient("to right", c.GridColor, style.GridLineWidth) +
			", " + style.LineGradient("to bottom", c.GridColor, style.GridLineWidth)},
		{Property: "animation", Value: c.Animation().String()},
	}
}

func (c BackgroundConfig) Animation() style.Animation {
	return style.Animation{
		Name:      style.GridAnimationName,
		Duration:  c.AnimationDuration,
		Timing:    "linear",
		Iteration: "infinite",
	}
}

// AnimatedBackground renders an overlay layer beneath a scrolling grid layer.
// Both layers fill the nearest positioned ancestor. The grid only moves when
// the page registers the move keyframes, which Layout does.
func AnimatedBackground(opts ...BackgroundOption) g.Node {
	config := ResolveBackground(opts...)

	return Div(
		Class("animated-background"),
		g.Attr("aria-hidden", "true"),

		Div(
			Class("animated-background__overlay"),
			Style(config.OverlayStyle().String()),
		),

		Div(
			Class("animated-background__grid"),
			Style(config.GridStyle().String()),
		),
	)
}

// BackgroundKeyframes registers the grid animation in a document.
func BackgroundKeyframes() g.Node {
	return StyleEl(g.Raw(style.GridTranslation().String()))
}
