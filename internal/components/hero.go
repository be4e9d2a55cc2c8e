package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	HeroOverlayColor = "#f0f0f0"
	HeroHeading      = "Welcome to Our Website"
	HeroSubheading   = "Discover amazing things with us"
)

func HeroSection() g.Node {
	return Section(
		Class("relative min-h-screen flex items-center justify-center"),
		ID("hero"),

		AnimatedBackground(WithOverlayColor(HeroOverlayColor)),

		Div(
			Class("z-10 text-center"),
			H1(
				Class("text-4xl font-bold mb-4 text-black"),
				g.Text(HeroHeading),
			),
			P(
				Class("text-xl text-black"),
				g.Text(HeroSubheading),
			),
		),
	)
}
