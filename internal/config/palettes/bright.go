package palettes

// Vibrant uses saturated colours that stay distinct on screens
func Vibrant() *Palette {
	return &Palette{
		Name:        "vibrant",
		Description: "Saturated colours for on-screen use",
		Colors:      []string{"#E63946", "#1D3557", "#F4A261", "#2A9D8F", "#8338EC", "#FFBE0B"},
		Text:        "#222222",
		Subtle:      "#777777",
	}
}

// Primary is the default palette: clean primary colours
func Primary() *Palette {
	return &Palette{
		Name:        "primary",
		Description: "Clean primary colours (default)",
		Colors:      []string{"#1F77B4", "#D62728", "#FFBF00", "#2CA02C", "#9467BD", "#FF7F0E"},
		Text:        "#222222",
		Subtle:      "#7F7F7F",
	}
}

// Pastel is a soft palette for light backgrounds
func Pastel() *Palette {
	return &Palette{
		Name:        "pastel",
		Description: "Soft tones for light backgrounds",
		Colors:      []string{"#A8DADC", "#F6BD60", "#F7A399", "#B8C0FF", "#C1E1C1", "#FFD6E0"},
		Text:        "#3D405B",
		Subtle:      "#9A9CB0",
	}
}

// Celebratory is warm and festive
func Celebratory() *Palette {
	return &Palette{
		Name:        "celebratory",
		Description: "Warm festive golds and reds",
		Colors:      []string{"#D4AF37", "#C1121F", "#FF8C42", "#6A4C93", "#2EC4B6", "#F15BB5"},
		Text:        "#2B2B2B",
		Subtle:      "#8C8C8C",
	}
}

// Innovative leans on electric blues and greens
func Innovative() *Palette {
	return &Palette{
		Name:        "innovative",
		Description: "Electric blues, greens and magenta",
		Colors:      []string{"#3A86FF", "#06D6A0", "#FF006E", "#8338EC", "#FB5607", "#00B4D8"},
		Text:        "#1B1B1B",
		Subtle:      "#8D99AE",
	}
}
