package theme

// SeedColors returns the palette the color customizer starts from: the
// theme's own customization when present, otherwise the theme-implied
// defaults.
func SeedColors(t Theme) CustomColors {
	if t.CustomColors != nil {
		return *t.CustomColors
	}
	return ExtractColors(t.ID)
}

// ExtractColors derives the default custom-color palette implied by a
// theme id. It seeds the color customizer with sensible starting values
// before the user overrides anything; unknown ids get a neutral
// fallback. Pure lookup, one case per catalog entry.
func ExtractColors(id string) CustomColors {
	switch id {
	case "modern":
		return CustomColors{Text: "#111827", Font: FontSans, Background: "#f9fafb", Button: "#7c3aed", Header: "#111827"}
	case "classic":
		return CustomColors{Text: "#172554", Font: FontSerif, Background: "#fffbeb", Button: "#172554", Header: "#172554"}
	case "minimal":
		return CustomColors{Text: "#171717", Font: FontSans, Background: "#ffffff", Button: "#171717", Header: "#171717"}
	case "dark":
		return CustomColors{Text: "#f1f5f9", Font: FontSans, Background: "#0f172a", Button: "#6366f1", Header: "#f1f5f9"}
	case "neon":
		return CustomColors{
			Text:           "#67e8f9",
			Font:           FontMono,
			Background:     "#09090b",
			Button:         "#22d3ee",
			ButtonGradient: "linear-gradient(to right, #22d3ee, #d946ef)",
			Header:         "#67e8f9",
		}
	case "nature":
		return CustomColors{Text: "#14532d", Font: FontSans, Background: "#ecfdf5", Button: "#16a34a", Header: "#14532d"}
	case "elegant":
		return CustomColors{Text: "#fde68a", Font: FontSerif, Background: "#0c0a09", Button: "#b45309", Header: "#fde68a"}
	case "playful":
		return CustomColors{
			Text:           "#db2777",
			Font:           FontSans,
			Background:     "#fdf2f8",
			Button:         "#f472b6",
			ButtonGradient: "linear-gradient(to right, #f472b6, #fb923c)",
			Header:         "#db2777",
		}
	case "corporate":
		return CustomColors{Text: "#111827", Font: FontSans, Background: "#f3f4f6", Button: "#1d4ed8", Header: "#111827"}
	case "sunset":
		return CustomColors{
			Text:               "#be123c",
			Font:               FontSans,
			Background:         "#fff7ed",
			BackgroundGradient: "linear-gradient(135deg, #fffbeb, #fff1f2)",
			Button:             "#f59e0b",
			ButtonGradient:     "linear-gradient(to right, #f59e0b, #e11d48)",
			Header:             "#be123c",
		}
	case "ocean":
		return CustomColors{
			Text:           "#0c4a6e",
			Font:           FontSans,
			Background:     "#ecfeff",
			Button:         "#06b6d4",
			ButtonGradient: "linear-gradient(to right, #06b6d4, #2563eb)",
			Header:         "#0c4a6e",
		}
	case "forest":
		return CustomColors{Text: "#dcfce7", Font: FontSans, Background: "#052e16", Button: "#65a30d", Header: "#dcfce7"}
	case "monochrome":
		return CustomColors{Text: "#000000", Font: FontMono, Background: "#e5e5e5", Button: "#000000", Header: "#000000"}
	case "candy":
		return CustomColors{
			Text:           "#818cf8",
			Font:           FontSans,
			Background:     "#eef2ff",
			Button:         "#f9a8d4",
			ButtonGradient: "linear-gradient(to right, #f9a8d4, #a5b4fc)",
			Header:         "#818cf8",
		}
	case "midnight":
		return CustomColors{Text: "#ddd6fe", Font: FontSans, Background: "#020617", Button: "#6d28d9", Header: "#ddd6fe"}
	case "aurora":
		return CustomColors{
			Text:           "#a7f3d0",
			TextGradient:   "linear-gradient(to right, #6ee7b7, #a5b4fc)",
			Font:           FontSans,
			Background:     "#020617",
			Button:         "#34d399",
			ButtonGradient: "linear-gradient(to right, #34d399, #818cf8)",
			Header:         "#a7f3d0",
		}
	case "retro":
		return CustomColors{Text: "#7c2d12", Font: FontSerif, Background: "#fef9c3", Button: "#c2410c", Header: "#7c2d12"}
	case "glass":
		return CustomColors{
			Text:               "#1e293b",
			Font:               FontSans,
			Background:         "#ddd6fe",
			BackgroundGradient: "linear-gradient(135deg, #c4b5fd, #67e8f9)",
			Button:             "#f8fafc",
			Header:             "#1e293b",
		}
	case "luxury":
		return CustomColors{
			Text:           "#facc15",
			Font:           FontSerif,
			Background:     "#09090b",
			Button:         "#eab308",
			ButtonGradient: "linear-gradient(to right, #facc15, #a16207)",
			Header:         "#facc15",
		}
	case "pastel":
		return CustomColors{Text: "#6b21a8", Font: FontSans, Background: "#faf5ff", Button: "#c084fc", Header: "#6b21a8"}
	default:
		return CustomColors{Text: "#1f2937", Font: FontSans, Background: "#ffffff", Button: "#3b82f6", Header: "#1f2937"}
	}
}
