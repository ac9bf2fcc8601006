package domain

// SimilaritySignals carries the five raw similarity measurements produced by
// external text and vision analyzers for one suspected site. Absent signals
// default to zero values, which the scorer treats as "no evidence".
//
// TextSimilarity, VisualSimilarity and ProductSimilarity are percentages in
// [0,100]; BrandMentions is a non-negative count. The scorer does not validate
// these ranges; callers must reject out-of-range inputs at the boundary (see
// scorer.Validate) instead of silently clamping them.
type SimilaritySignals struct {
	TextSimilarity    float64 `json:"textSimilarity"`
	VisualSimilarity  float64 `json:"visualSimilarity"`
	BrandMentions     int     `json:"brandMentions"`
	LogoUsage         bool    `json:"logoUsage"`
	ProductSimilarity float64 `json:"productSimilarity"`
}

// Tier is the three-way classification of an overall evidence score.
// Two display vocabularies exist for the same thresholds: Label returns the
// risk form (LOW/MODERATE/HIGH) and EvidenceLabel the evidence form
// (INSUFFICIENT/POTENTIAL/STRONG).
type Tier string

const (
	// TierLow covers overall scores below 50.
	TierLow Tier = "LOW"
	// TierModerate covers overall scores in [50,80).
	TierModerate Tier = "MODERATE"
	// TierHigh covers overall scores of 80 and above.
	TierHigh Tier = "HIGH"
)

// TierForScore classifies an overall score into its tier.
func TierForScore(score int) Tier {
	switch {
	case score >= 80:
		return TierHigh
	case score >= 50:
		return TierModerate
	default:
		return TierLow
	}
}

// Label returns the risk-oriented display form of the tier.
func (t Tier) Label() string { return string(t) }

// EvidenceLabel returns the evidence-oriented display form of the tier.
func (t Tier) EvidenceLabel() string {
	switch t {
	case TierHigh:
		return "STRONG"
	case TierModerate:
		return "POTENTIAL"
	default:
		return "INSUFFICIENT"
	}
}

// ScoreBreakdown is the full output of the evidence scorer: the four
// sub-scores, their weighted contributions, the rounded overall score and its
// tier. Sub-scores and weighted components are kept unrounded; only the
// combined sum is rounded, once, into OverallScore. Display layers may round
// the components independently for readability, which can make the displayed
// rows sum to a value different from OverallScore.
type ScoreBreakdown struct {
	TextScore      float64 `json:"textScore"`
	VisualScore    float64 `json:"visualScore"`
	ProductScore   float64 `json:"productScore"`
	ConfusionScore float64 `json:"confusionScore"`

	WeightedText      float64 `json:"weightedText"`
	WeightedVisual    float64 `json:"weightedVisual"`
	WeightedProduct   float64 `json:"weightedProduct"`
	WeightedConfusion float64 `json:"weightedConfusion"`

	// OverallScore is the single-rounded combined score, clamped to [0,100].
	OverallScore int `json:"overallScore"`
	// Tier is the classification of OverallScore.
	Tier Tier `json:"tier"`
}

// EvidenceThresholds are the fixed descriptive strings attached to every score
// result for display. They document the evidence bar applied per signal and
// are constants, not inputs.
type EvidenceThresholds struct {
	Text    string `json:"textThreshold"`
	Visual  string `json:"visualThreshold"`
	Logo    string `json:"logoThreshold"`
	Product string `json:"productThreshold"`
}

// DefaultEvidenceThresholds returns the threshold descriptors applied by the
// zero-trust scoring methodology.
func DefaultEvidenceThresholds() EvidenceThresholds {
	return EvidenceThresholds{
		Text:    "95% for high confidence, 85% for moderate confidence",
		Visual:  "95% for high confidence, 90% for moderate confidence",
		Logo:    "Exact matches only",
		Product: "95% for high confidence, 90% for moderate confidence",
	}
}
