package palettes

// Brand colours shared by the institutional palettes
var oxford = struct {
	blue, navy, sky, stone, ivory, gold, claret, slate, sage, charcoal, mist string
}{
	blue:     "#002147",
	navy:     "#1D2A4D",
	sky:      "#7FA7CC",
	stone:    "#D9D8D6",
	ivory:    "#F3F1EE",
	gold:     "#E6A800",
	claret:   "#7A1C3E",
	slate:    "#44687D",
	sage:     "#7A9A77",
	charcoal: "#333333",
	mist:     "#8A8D8F",
}

// Professional is the default institutional palette (deep blues with a gold accent)
func Professional() *Palette {
	return &Palette{
		Name:        "professional",
		Description: "Deep blues with a gold accent",
		Colors:      []string{oxford.blue, oxford.slate, oxford.sky, oxford.gold, oxford.claret, oxford.sage},
		Text:        oxford.charcoal,
		Subtle:      oxford.mist,
	}
}

// Traditional suits academic and formal reports
func Traditional() *Palette {
	return &Palette{
		Name:        "traditional",
		Description: "Navy, claret and gold for formal reports",
		Colors:      []string{oxford.navy, oxford.claret, oxford.gold, oxford.slate, "#5B3A29", oxford.stone},
		Text:        oxford.charcoal,
		Subtle:      oxford.mist,
	}
}

// Corporate is a restrained palette for business presentations
func Corporate() *Palette {
	return &Palette{
		Name:        "corporate",
		Description: "Restrained blues and greys for presentations",
		Colors:      []string{oxford.blue, "#3E5C76", "#748CAB", oxford.mist, "#A3B1C6", oxford.charcoal},
		Text:        oxford.charcoal,
		Subtle:      oxford.mist,
	}
}

// Contemporary mixes the brand blue with modern accents
func Contemporary() *Palette {
	return &Palette{
		Name:        "contemporary",
		Description: "Brand blue with teal and coral accents",
		Colors:      []string{oxford.blue, "#00A5A8", "#FF6F59", "#F4B942", "#6C5B7B", oxford.sage},
		Text:        oxford.charcoal,
		Subtle:      oxford.mist,
	}
}
