package theme

// DefaultCatalog returns the built-in theme catalog in display order.
// Entries are value copies; callers cannot corrupt the catalog through
// the returned slice.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:          "modern",
			Name:        "Modern",
			Description: "Clean lines with a violet accent",
			Preview:     "#7c3aed",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-white rounded-2xl shadow-xl",
				Header:     "text-3xl font-bold text-gray-900 mb-2",
				Field:      "mb-6",
				Label:      "block text-sm font-medium text-gray-700 mb-2",
				Input:      "w-full px-4 py-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-violet-500",
				Button:     "w-full py-3 bg-violet-600 hover:bg-violet-700 text-white font-semibold rounded-lg",
				Background: "bg-gray-50",
			},
		},
		{
			ID:          "classic",
			Name:        "Classic",
			Description: "Traditional serif styling in navy and cream",
			Preview:     "#1e3a5f",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-10 bg-amber-50 border border-amber-200 rounded",
				Header:     "text-2xl font-serif text-blue-950 mb-3",
				Field:      "mb-5",
				Label:      "block text-sm font-serif text-blue-950 mb-1",
				Input:      "w-full px-3 py-2 border border-amber-300 rounded bg-white",
				Button:     "px-8 py-2 bg-blue-950 text-amber-50 font-serif rounded",
				Background: "bg-amber-100",
			},
		},
		{
			ID:          "minimal",
			Name:        "Minimal",
			Description: "Nothing but the essentials",
			Preview:     "#171717",
			Styles: Styles{
				Container:  "max-w-xl mx-auto p-6",
				Header:     "text-xl font-medium text-neutral-900 mb-4",
				Field:      "mb-4",
				Label:      "block text-xs uppercase tracking-wide text-neutral-500 mb-1",
				Input:      "w-full px-0 py-2 border-b border-neutral-300 focus:border-neutral-900",
				Button:     "px-6 py-2 bg-neutral-900 text-white text-sm",
				Background: "bg-white",
			},
		},
		{
			ID:          "dark",
			Name:        "Dark",
			Description: "Low-light friendly slate palette",
			Preview:     "#0f172a",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-slate-800 rounded-xl",
				Header:     "text-2xl font-semibold text-slate-100 mb-2",
				Field:      "mb-6",
				Label:      "block text-sm text-slate-300 mb-2",
				Input:      "w-full px-4 py-3 bg-slate-900 border border-slate-700 rounded-lg text-slate-100",
				Button:     "w-full py-3 bg-indigo-500 hover:bg-indigo-400 text-white rounded-lg",
				Background: "bg-slate-900",
			},
		},
		{
			ID:          "neon",
			Name:        "Neon",
			Description: "High-contrast cyberpunk glow",
			Preview:     "linear-gradient(135deg, #0ff, #f0f)",
			Styles: Styles{
				Container:     "max-w-2xl mx-auto p-8 bg-black border-2 border-cyan-400 rounded-lg shadow-[0_0_30px_#22d3ee]",
				Header:        "text-3xl font-bold text-cyan-300 mb-2",
				Field:         "mb-6",
				Label:         "block text-sm text-fuchsia-300 mb-2",
				Input:         "w-full px-4 py-3 bg-zinc-900 border border-cyan-500 rounded text-cyan-100",
				Button:        "w-full py-3 bg-gradient-to-r from-cyan-400 to-fuchsia-500 text-black font-bold rounded",
				Background:    "bg-zinc-950",
				BooleanSwitch: "bg-fuchsia-600",
			},
		},
		{
			ID:          "nature",
			Name:        "Nature",
			Description: "Earthy greens and soft contrast",
			Preview:     "#16a34a",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-green-50 rounded-2xl border border-green-200",
				Header:     "text-2xl font-semibold text-green-900 mb-2",
				Field:      "mb-5",
				Label:      "block text-sm text-green-800 mb-1",
				Input:      "w-full px-4 py-2 border border-green-300 rounded-lg bg-white",
				Button:     "w-full py-3 bg-green-600 hover:bg-green-700 text-white rounded-lg",
				Background: "bg-emerald-50",
			},
		},
		{
			ID:          "elegant",
			Name:        "Elegant",
			Description: "Refined gold on deep charcoal",
			Preview:     "#b45309",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-10 bg-stone-900 rounded border border-amber-700",
				Header:     "text-2xl font-serif text-amber-200 mb-3",
				Field:      "mb-6",
				Label:      "block text-sm font-serif text-stone-300 mb-2",
				Input:      "w-full px-4 py-3 bg-stone-800 border border-stone-600 rounded text-stone-100",
				Button:     "px-10 py-3 bg-amber-700 text-stone-950 font-serif rounded",
				Background: "bg-stone-950",
			},
		},
		{
			ID:          "playful",
			Name:        "Playful",
			Description: "Rounded corners and candy colors",
			Preview:     "linear-gradient(135deg, #f472b6, #fb923c)",
			Styles: Styles{
				Container:   "max-w-2xl mx-auto p-8 bg-white rounded-3xl shadow-lg border-4 border-pink-200",
				Header:      "text-3xl font-extrabold text-pink-600 mb-2",
				Field:       "mb-6",
				Label:       "block text-sm font-bold text-orange-500 mb-2",
				Input:       "w-full px-4 py-3 border-2 border-pink-300 rounded-full",
				Button:      "w-full py-3 bg-gradient-to-r from-pink-400 to-orange-400 text-white font-bold rounded-full",
				Background:  "bg-pink-50",
				ProgressBar: "bg-pink-400",
			},
		},
		{
			ID:          "corporate",
			Name:        "Corporate",
			Description: "Buttoned-up blue for business forms",
			Preview:     "#1d4ed8",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-white border border-gray-200 rounded-md shadow-sm",
				Header:     "text-xl font-semibold text-gray-900 mb-1",
				Field:      "mb-4",
				Label:      "block text-sm font-medium text-gray-600 mb-1",
				Input:      "w-full px-3 py-2 border border-gray-300 rounded-md focus:ring-1 focus:ring-blue-600",
				Button:     "px-6 py-2 bg-blue-700 hover:bg-blue-800 text-white text-sm font-medium rounded-md",
				Background: "bg-gray-100",
			},
		},
		{
			ID:          "sunset",
			Name:        "Sunset",
			Description: "Warm gradient from amber to rose",
			Preview:     "linear-gradient(135deg, #f59e0b, #e11d48)",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-gradient-to-br from-amber-50 to-rose-50 rounded-2xl",
				Header:     "text-3xl font-bold text-rose-700 mb-2",
				Field:      "mb-6",
				Label:      "block text-sm text-amber-800 mb-2",
				Input:      "w-full px-4 py-3 border border-amber-200 rounded-xl bg-white/80",
				Button:     "w-full py-3 bg-gradient-to-r from-amber-500 to-rose-500 text-white font-semibold rounded-xl",
				Background: "bg-orange-50",
			},
		},
		{
			ID:          "ocean",
			Name:        "Ocean",
			Description: "Cool blues with a teal accent",
			Preview:     "linear-gradient(135deg, #06b6d4, #2563eb)",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-sky-50 rounded-2xl border border-sky-200",
				Header:     "text-2xl font-semibold text-sky-900 mb-2",
				Field:      "mb-5",
				Label:      "block text-sm text-sky-700 mb-1",
				Input:      "w-full px-4 py-3 border border-sky-300 rounded-lg bg-white",
				Button:     "w-full py-3 bg-gradient-to-r from-cyan-500 to-blue-600 text-white rounded-lg",
				Background: "bg-cyan-50",
			},
		},
		{
			ID:          "forest",
			Name:        "Forest",
			Description: "Deep evergreen with moss highlights",
			Preview:     "#14532d",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-green-950 rounded-xl border border-green-800",
				Header:     "text-2xl font-semibold text-green-100 mb-2",
				Field:      "mb-6",
				Label:      "block text-sm text-green-300 mb-2",
				Input:      "w-full px-4 py-3 bg-green-900 border border-green-700 rounded-lg text-green-50",
				Button:     "w-full py-3 bg-lime-600 hover:bg-lime-500 text-green-950 font-semibold rounded-lg",
				Background: "bg-green-950",
			},
		},
		{
			ID:          "monochrome",
			Name:        "Monochrome",
			Description: "Black, white, and every gray between",
			Preview:     "#404040",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-white border-2 border-black",
				Header:     "text-2xl font-bold text-black mb-2 uppercase tracking-tight",
				Field:      "mb-5",
				Label:      "block text-xs font-bold text-black uppercase mb-1",
				Input:      "w-full px-3 py-2 border-2 border-black bg-white",
				Button:     "px-8 py-3 bg-black text-white font-bold uppercase",
				Background: "bg-neutral-200",
			},
		},
		{
			ID:          "candy",
			Name:        "Candy",
			Description: "Bubblegum pastels on white",
			Preview:     "linear-gradient(135deg, #f9a8d4, #a5b4fc)",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-white rounded-3xl shadow-md",
				Header:     "text-2xl font-bold text-indigo-400 mb-2",
				Field:      "mb-5",
				Label:      "block text-sm text-pink-500 mb-1",
				Input:      "w-full px-4 py-3 border border-indigo-200 rounded-2xl bg-indigo-50/50",
				Button:     "w-full py-3 bg-gradient-to-r from-pink-300 to-indigo-300 text-white font-semibold rounded-2xl",
				Background: "bg-indigo-50",
			},
		},
		{
			ID:          "midnight",
			Name:        "Midnight",
			Description: "Near-black with violet starlight",
			Preview:     "linear-gradient(135deg, #1e1b4b, #6d28d9)",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-indigo-950 rounded-xl border border-violet-900",
				Header:     "text-2xl font-semibold text-violet-200 mb-2",
				Field:      "mb-6",
				Label:      "block text-sm text-indigo-300 mb-2",
				Input:      "w-full px-4 py-3 bg-slate-950 border border-violet-800 rounded-lg text-violet-100",
				Button:     "w-full py-3 bg-violet-700 hover:bg-violet-600 text-white rounded-lg",
				Background: "bg-slate-950",
			},
		},
		{
			ID:          "aurora",
			Name:        "Aurora",
			Description: "Northern-lights gradient on dark sky",
			Preview:     "linear-gradient(135deg, #34d399, #818cf8)",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-slate-900 rounded-2xl border border-emerald-700/40",
				Header:     "text-3xl font-bold bg-gradient-to-r from-emerald-300 to-indigo-300 bg-clip-text text-transparent mb-2",
				Field:      "mb-6",
				Label:      "block text-sm text-emerald-200 mb-2",
				Input:      "w-full px-4 py-3 bg-slate-800 border border-slate-600 rounded-lg text-slate-100",
				Button:     "w-full py-3 bg-gradient-to-r from-emerald-400 to-indigo-400 text-slate-950 font-semibold rounded-lg",
				Background: "bg-slate-950",
			},
		},
		{
			ID:          "retro",
			Name:        "Retro",
			Description: "Seventies mustard and burnt orange",
			Preview:     "#d97706",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-yellow-100 border-4 border-orange-800 rounded-lg",
				Header:     "text-3xl font-black text-orange-900 mb-2",
				Field:      "mb-5",
				Label:      "block text-sm font-bold text-orange-800 mb-1",
				Input:      "w-full px-4 py-2 border-2 border-orange-700 rounded bg-amber-50",
				Button:     "px-8 py-3 bg-orange-700 text-yellow-100 font-black rounded",
				Background: "bg-yellow-200",
			},
		},
		{
			ID:          "glass",
			Name:        "Glass",
			Description: "Frosted panels over a soft gradient",
			Preview:     "linear-gradient(135deg, #c4b5fd, #67e8f9)",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-white/30 backdrop-blur-xl rounded-2xl border border-white/40 shadow-xl",
				Header:     "text-2xl font-semibold text-slate-800 mb-2",
				Field:      "mb-6",
				Label:      "block text-sm text-slate-700 mb-2",
				Input:      "w-full px-4 py-3 bg-white/50 border border-white/60 rounded-xl",
				Button:     "w-full py-3 bg-white/60 hover:bg-white/80 text-slate-900 font-semibold rounded-xl",
				Background: "bg-gradient-to-br from-violet-300 to-cyan-200",
			},
		},
		{
			ID:          "luxury",
			Name:        "Luxury",
			Description: "Champagne gold on jet black",
			Preview:     "linear-gradient(135deg, #facc15, #a16207)",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-10 bg-black rounded border border-yellow-600",
				Header:     "text-2xl font-serif text-yellow-400 mb-3 tracking-wide",
				Field:      "mb-6",
				Label:      "block text-xs uppercase tracking-widest text-yellow-600 mb-2",
				Input:      "w-full px-4 py-3 bg-zinc-900 border border-yellow-800 rounded text-yellow-100",
				Button:     "px-10 py-3 bg-gradient-to-r from-yellow-500 to-yellow-700 text-black font-semibold rounded",
				Background: "bg-zinc-950",
			},
		},
		{
			ID:          "pastel",
			Name:        "Pastel",
			Description: "Muted lavender calm",
			Preview:     "#c084fc",
			Styles: Styles{
				Container:  "max-w-2xl mx-auto p-8 bg-purple-50 rounded-2xl",
				Header:     "text-2xl font-medium text-purple-800 mb-2",
				Field:      "mb-5",
				Label:      "block text-sm text-purple-600 mb-1",
				Input:      "w-full px-4 py-3 border border-purple-200 rounded-xl bg-white",
				Button:     "w-full py-3 bg-purple-400 hover:bg-purple-500 text-white rounded-xl",
				Background: "bg-purple-100",
			},
		},
	}
}
