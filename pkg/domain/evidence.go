package domain

// TextEvidence is the textual analysis payload supplied by an external text
// analyzer. All narrative fields are optional; WithDefaults fills the
// placeholder text used when the analyzer produced no data, so downstream
// rendering never has to branch on missing fields.
type TextEvidence struct {
	// Similarity is the text similarity percentage in [0,100].
	Similarity float64 `json:"similarity"`
	// BrandMentions counts verified exact brand name matches.
	BrandMentions int `json:"brandMentions"`

	Context             string `json:"context,omitempty"`
	ProductDescriptions string `json:"productDescriptions,omitempty"`
	MetaTags            string `json:"metaTags,omitempty"`
	PatternAnalysis     string `json:"patternAnalysis,omitempty"`
	IntentIndicators    string `json:"intentIndicators,omitempty"`
}

// WithDefaults returns a copy with empty narrative fields replaced by their
// display placeholders.
func (t TextEvidence) WithDefaults() TextEvidence {
	if t.Context == "" {
		t.Context = "No context available or insufficient data to determine context"
	}
	if t.ProductDescriptions == "" {
		t.ProductDescriptions = "No exact product description matches identified"
	}
	if t.MetaTags == "" {
		t.MetaTags = "No relevant meta tags identified"
	}
	if t.PatternAnalysis == "" {
		t.PatternAnalysis = "Insufficient data to establish conclusive patterns."
	}
	if t.IntentIndicators == "" {
		t.IntentIndicators = "No conclusive evidence of intent identified. " +
			"This analysis does not make assumptions about intent without direct evidence."
	}

	return t
}

// VisualEvidence is the visual analysis payload supplied by an external image
// analyzer.
type VisualEvidence struct {
	// Similarity is the visual similarity percentage in [0,100].
	Similarity float64 `json:"similarity"`
	// LogoPresent reports whether the original logo was verified on the site.
	LogoPresent bool `json:"logoPresent"`
	// ProductSimilarity is the product image similarity percentage in [0,100].
	ProductSimilarity float64 `json:"productSimilarity"`

	ColorScheme      string `json:"colorScheme,omitempty"`
	LayoutSimilarity string `json:"layoutSimilarity,omitempty"`
}

// WithDefaults returns a copy with empty narrative fields replaced by their
// display placeholders.
func (v VisualEvidence) WithDefaults() VisualEvidence {
	if v.ColorScheme == "" {
		v.ColorScheme = "Insufficient data to conclusively determine color scheme similarity"
	}
	if v.LayoutSimilarity == "" {
		v.LayoutSimilarity = "Insufficient data to conclusively determine layout similarity"
	}

	return v
}

// Signals combines textual and visual evidence into the raw similarity
// signals consumed by the evidence scorer.
func Signals(text TextEvidence, visual VisualEvidence) SimilaritySignals {
	return SimilaritySignals{
		TextSimilarity:    text.Similarity,
		VisualSimilarity:  visual.Similarity,
		BrandMentions:     text.BrandMentions,
		LogoUsage:         visual.LogoPresent,
		ProductSimilarity: visual.ProductSimilarity,
	}
}
