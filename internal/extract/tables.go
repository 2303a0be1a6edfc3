// Package extract pulls product names and metadata out of accepted catalog
// chunks. Every function is total: malformed input degrades to "not found".
package extract

// Tables holds the allowlists and context markers used by the extractors.
// Injected so new studios, colors or locales are a config change.
type Tables struct {
	DesignerAllowlist  []string `yaml:"designer_allowlist"`
	ColorAllowlist     []string `yaml:"color_allowlist"`
	NameContextMarkers []string `yaml:"name_context_markers"`
}

// DefaultTables returns the allowlists tuned on the HARMONY catalogs.
func DefaultTables() Tables {
	return Tables{
		DesignerAllowlist: []string{
			"ESTUDI{H}AC", "DSIGNIO", "ALT DESIGN", "MUT", "YONOH", "Stacy Garcia NY",
		},
		ColorAllowlist: []string{
			"TAUPE", "SAND", "CLAY", "WHITE", "BLACK", "GREY", "GRAY",
			"ANTHRACITE", "BEIGE", "BROWN", "MINT", "NAVY", "BORDEAUX",
		},
		NameContextMarkers: []string{
			"×", "cm", "mm", "designer", "estudi", "dsignio", "yonoh",
		},
	}
}
