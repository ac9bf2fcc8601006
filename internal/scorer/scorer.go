// Package scorer converts raw similarity signals into a calibrated evidence
// score using a zero-trust methodology: every sub-score defaults to zero and
// only near-exact similarity raises it meaningfully, via tiered
// piecewise-linear transforms rather than a smooth blend, so partial or
// ambiguous similarity cannot accumulate into a high score.
//
// Score is a pure, total function over its numeric domain and requires no
// synchronization. It does not validate its inputs; callers must reject
// out-of-range signals with Validate at the boundary instead of clamping
// them, so upstream bugs surface instead of being masked.
package scorer

import (
	"brandintel/pkg/domain"
	"brandintel/pkg/serrors"
	"math"
)

// Weights of the four evidence factors in the overall score. They sum to 1.0;
// visual evidence is weighted highest because visual deception dominates
// consumer-confusion risk.
const (
	textWeight      = 0.25
	visualWeight    = 0.35
	productWeight   = 0.20
	confusionWeight = 0.20
)

// confusionDampening is applied to the composite confusion factor.
const confusionDampening = 0.7

// logoBonus is the flat addition to the visual score for verified identical
// logo usage, applied before clamping to [0,100].
const logoBonus = 20

// Validate checks the scorer's input contract: similarity percentages must be
// in [0,100] and the mention count non-negative. Violations are reported as
// serrors.ErrBadRequest.
func Validate(s domain.SimilaritySignals) error {
	check := func(name string, v float64) error {
		if v < 0 || v > 100 {
			return serrors.With(serrors.ErrBadRequest, "%s must be in [0,100], got %v", name, v)
		}

		return nil
	}

	if err := check("textSimilarity", s.TextSimilarity); err != nil {
		return err
	}
	if err := check("visualSimilarity", s.VisualSimilarity); err != nil {
		return err
	}
	if err := check("productSimilarity", s.ProductSimilarity); err != nil {
		return err
	}
	if s.BrandMentions < 0 {
		return serrors.With(serrors.ErrBadRequest, "brandMentions must be >= 0, got %d", s.BrandMentions)
	}

	return nil
}

// mentionScore maps a verified brand-mention count onto a conservative step
// function. Even many mentions cap at 70 without supporting context.
func mentionScore(mentions int) float64 {
	switch {
	case mentions <= 0:
		return 0
	case mentions == 1:
		// a single mention is not strong evidence
		return 10
	case mentions < 5:
		return 20
	case mentions < 10:
		return 35
	case mentions < 25:
		return 50
	default:
		return 70
	}
}

// textSimilarityScore only credits text similarity above 75%, scaling
// steeply once matches are near-exact.
func textSimilarityScore(similarity float64) float64 {
	switch {
	case similarity > 95:
		return similarity * 0.8
	case similarity > 85:
		return similarity * 0.3
	case similarity > 75:
		return similarity * 0.1
	default:
		return 0
	}
}

// visualScore credits visual similarity from 70% upwards with steep tiering,
// then adds the flat logo bonus (clamped to 100) when identical logo usage
// was verified.
func visualScore(similarity float64, logoUsage bool) float64 {
	var score float64
	switch {
	case similarity > 95:
		score = similarity * 0.9
	case similarity > 90:
		score = similarity * 0.5
	case similarity > 80:
		score = similarity * 0.3
	case similarity > 70:
		score = similarity * 0.1
	}

	if logoUsage {
		score = math.Min(100, score+logoBonus)
	}

	return score
}

// productScore only credits product similarity above 80%.
func productScore(similarity float64) float64 {
	switch {
	case similarity > 95:
		return similarity * 0.8
	case similarity > 90:
		return similarity * 0.4
	case similarity > 80:
		return similarity * 0.2
	default:
		return 0
	}
}

// Score maps the five raw similarity signals onto a full evidence breakdown.
//
// The text factor takes the stronger of the mention-count step score and the
// tiered similarity score, never their sum: both measure the same fact
// (brand-name usage) and summing would double count. The confusion factor is
// a dampened composite of the three sub-scores. The overall score rounds the
// combined weighted sum exactly once; rounding components individually would
// compound rounding error. Display layers that round the breakdown for
// readability may therefore show rows that do not sum to OverallScore.
func Score(s domain.SimilaritySignals) domain.ScoreBreakdown {
	adjustedText := math.Max(mentionScore(s.BrandMentions), textSimilarityScore(s.TextSimilarity))
	visual := visualScore(s.VisualSimilarity, s.LogoUsage)
	product := productScore(s.ProductSimilarity)

	confusion := (adjustedText*0.3 + visual*0.5 + product*0.2) * confusionDampening

	weightedText := adjustedText * textWeight
	weightedVisual := visual * visualWeight
	weightedProduct := product * productWeight
	weightedConfusion := confusion * confusionWeight

	overall := int(math.Round(weightedText + weightedVisual + weightedProduct + weightedConfusion))
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}

	return domain.ScoreBreakdown{
		TextScore:      adjustedText,
		VisualScore:    visual,
		ProductScore:   product,
		ConfusionScore: confusion,

		WeightedText:      weightedText,
		WeightedVisual:    weightedVisual,
		WeightedProduct:   weightedProduct,
		WeightedConfusion: weightedConfusion,

		OverallScore: overall,
		Tier:         domain.TierForScore(overall),
	}
}
