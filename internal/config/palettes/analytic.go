package palettes

// Health uses the calm greens and blues common in clinical reporting
func Health() *Palette {
	return &Palette{
		Name:        "health",
		Description: "Calm greens and blues for clinical work",
		Colors:      []string{"#00796B", "#4DB6AC", "#0277BD", "#81D4FA", "#558B2F", "#AED581"},
		Text:        "#263238",
		Subtle:      "#90A4AE",
	}
}

// Diverging runs from red through neutral to blue
func Diverging() *Palette {
	return &Palette{
		Name:        "diverging",
		Description: "Red through neutral to blue",
		Colors:      []string{"#B2182B", "#EF8A62", "#FDDBC7", "#D1E5F0", "#67A9CF", "#2166AC"},
		Text:        "#222222",
		Subtle:      "#888888",
	}
}

// SequentialBlue runs from dark to light blue
func SequentialBlue() *Palette {
	return &Palette{
		Name:        "sequential_blue",
		Description: "Dark to light blue",
		Colors:      []string{"#08306B", "#08519C", "#2171B5", "#4292C6", "#6BAED6", "#9ECAE1"},
		Text:        "#08306B",
		Subtle:      "#6BAED6",
	}
}
