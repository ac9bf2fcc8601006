// Package report renders brand protection analysis documents. Rendering is a
// pure function of its input plus an injected clock: the same input and
// timestamp always produce the same document, and the six top-level sections
// always appear in the same fixed order regardless of input content.
package report

import (
	"brandintel/pkg/domain"
	"bytes"
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"
)

// Input carries everything the synthesizer needs to render one report.
// Narrative evidence fields may be empty; they are defaulted once here, at
// the rendering boundary, never during template evaluation.
type Input struct {
	// Brand is the original brand name.
	Brand string
	// OriginalURL is the official site of the brand.
	OriginalURL string
	// SuspectedURL is the site under analysis.
	SuspectedURL string

	// Text is the textual evidence collected by the external analyzer.
	Text domain.TextEvidence
	// Visual is the visual evidence collected by the external analyzer.
	Visual domain.VisualEvidence
	// AdditionalEvidence is free-form supplementary evidence, if any.
	AdditionalEvidence string

	// Breakdown is the scorer's output for the combined signals.
	Breakdown domain.ScoreBreakdown
}

// Synthesizer renders reports. The clock is injected so tests can pin the
// timestamp; it is the only non-deterministic input.
type Synthesizer struct {
	now func() time.Time
}

// New creates a Synthesizer using the given clock, or time.Now when nil.
func New(now func() time.Time) *Synthesizer {
	if now == nil {
		now = time.Now
	}

	return &Synthesizer{now: now}
}

// recommendations maps each tier to its fixed recommendations block. A lookup
// table keeps the three action plans reviewable side by side instead of
// burying them in conditionals.
var recommendations = map[domain.Tier]string{ //nolint: gochecknoglobals
	domain.TierHigh: `* **Evidence Verification:** Conduct human review to confirm the multiple instances of exact brand asset usage
* **Legal Assessment:** Consider having legal counsel review the verified evidence
* **Evidence Preservation:** Archive all pages and evidence for potential action
* **Ongoing Monitoring:** Establish regular monitoring of this domain`,
	domain.TierModerate: `* **Further Investigation:** Gather additional evidence to verify potential brand usage
* **Human Review:** Have a human brand specialist review the evidence collected
* **Regular Monitoring:** Continue monitoring the site for changes
* **Documentation:** Maintain detailed records of all findings`,
	domain.TierLow: `* **Continued Monitoring:** Consider periodic checks for changes to the site
* **Documentation:** Maintain records of current findings
* **No Immediate Action:** Insufficient evidence to warrant action at this time
* **Reassess:** Consider reassessment if new evidence emerges`,
}

// templateData is the fully resolved view handed to the template: every
// conditional and default has already been decided.
type templateData struct {
	CaseID string
	Date   string

	Brand        string
	OriginalURL  string
	SuspectedURL string

	Text               domain.TextEvidence
	LogoLine           string
	ColorScheme        string
	LayoutSimilarity   string
	ProductImageLine   string
	AdditionalEvidence string

	OverallScore  int
	EvidenceLevel string
	RiskLevel     string

	TextScore      int
	VisualScore    int
	ProductScore   int
	ConfusionScore int

	WeightedText      int
	WeightedVisual    int
	WeightedProduct   int
	WeightedConfusion int

	Thresholds domain.EvidenceThresholds

	Recommendations string
}

const reportTemplate = `# BRAND PROTECTION ANALYSIS REPORT (ZERO-TRUST APPROACH)

**CASE ID:** {{.CaseID}}
**DATE:** {{.Date}}
**ANALYST:** Brand Protection AI System

## 1. EXECUTIVE SUMMARY

This report presents findings from an investigation into potential brand usage by **{{.SuspectedURL}}** in relation to the **{{.Brand}}** brand. This analysis follows a zero-trust methodology where no infringement is assumed unless conclusively proven with direct evidence.

The investigation has calculated an **Evidence-Based Score of {{.OverallScore}}/100**, indicating {{.EvidenceLevel}} EVIDENCE of brand usage that may warrant further investigation.

## 2. SUBJECT DETAILS

| Original Brand | Website Under Analysis |
|----------------|---------------------------|
| Brand Name: **{{.Brand}}** | Site URL: **{{.SuspectedURL}}** |
| Official URL: **{{.OriginalURL}}** | Analysis Date: **{{.Date}}** |

## 3. EVIDENCE COLLECTION

### 3.1 Textual Evidence

* **Exact Brand Name Matches:** {{.Text.BrandMentions}} verified instances of "{{.Brand}}" found
* **Context of Mentions:** {{.Text.Context}}
* **Product Description Matches:** {{.Text.ProductDescriptions}}
* **Meta Tag Analysis:** {{.Text.MetaTags}}

### 3.2 Visual Evidence

* **Verified Logo Usage:** {{.LogoLine}}
* **Color Scheme Analysis:** {{.ColorScheme}}
* **Layout Comparison:** {{.LayoutSimilarity}}
* **Product Image Analysis:** {{.ProductImageLine}}

### 3.3 Additional Evidence

{{.AdditionalEvidence}}

## 4. OBJECTIVE ANALYSIS

### 4.1 Pattern Identification

{{.Text.PatternAnalysis}}

### 4.2 Factual Observations

{{.Text.IntentIndicators}}

### 4.3 Potential for Consumer Confusion

Based solely on verified evidence, the potential for consumer confusion is assessed as {{.RiskLevel}}.

## 5. EVIDENCE ASSESSMENT

### 5.1 Zero-Trust Scoring Methodology

The evidence score is calculated using a zero-trust methodology with very high thresholds for evidence:
* Brand name usage (25%) - Requires near-exact matches (95%+ similarity)
* Visual similarity (35%) - Requires near-identical elements (95%+ similarity)
* Product similarity (20%) - Requires near-identical products (95%+ similarity)
* Consumer confusion potential (20%) - Based solely on verified evidence

### 5.2 Evidence Score Breakdown

| Factor | Weight | Evidence Rating | Weighted Score |
|--------|--------|-----------|---------------|
| Brand Name Usage | 25% | {{.TextScore}}/100 | {{.WeightedText}} |
| Visual Similarity | 35% | {{.VisualScore}}/100 | {{.WeightedVisual}} |
| Product Similarity | 20% | {{.ProductScore}}/100 | {{.WeightedProduct}} |
| Consumer Confusion | 20% | {{.ConfusionScore}}/100 | {{.WeightedConfusion}} |
| **TOTAL** | **100%** | | **{{.OverallScore}}/100** |

### 5.3 Evidence Classification

**Evidence Level:** {{.EvidenceLevel}}

**Classification Criteria:**
* INSUFFICIENT: 0-49 - Minimal or inconclusive evidence found
* POTENTIAL: 50-79 - Some concrete evidence identified, requires further verification
* STRONG: 80-100 - Multiple verified instances of exact brand elements usage

### 5.4 Evidence Thresholds Applied

* **Text Analysis Threshold:** {{.Thresholds.Text}}
* **Visual Analysis Threshold:** {{.Thresholds.Visual}}
* **Logo Detection Threshold:** {{.Thresholds.Logo}}
* **Product Similarity Threshold:** {{.Thresholds.Product}}

## 6. RECOMMENDATIONS

Based on the objective analysis and evidence score of **{{.OverallScore}}/100**, the following actions are recommended:

{{.Recommendations}}

---

*This analysis was generated by an automated brand protection system using a zero-trust methodology. All claims require human verification before any action is taken. This report makes no assumptions and only presents verified evidence.*
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate)) //nolint: gochecknoglobals

// roundScore rounds a sub-score for display. The displayed rows are rounded
// independently of the overall score and may not sum to it; this mismatch is
// inherited behavior, not a bug.
func roundScore(v float64) int {
	return int(math.Round(v))
}

// Render produces the full report document, its case identifier and the
// suggested filename for the given input.
func (s *Synthesizer) Render(in Input) (domain.BrandReport, error) {
	now := s.now()
	timestamp := now.Format("20060102150405")
	caseID := strings.ToUpper(in.Brand) + "-" + timestamp

	text := in.Text.WithDefaults()
	visual := in.Visual.WithDefaults()

	logoLine := "NOT CONFIRMED: No identical logo usage verified"
	if visual.LogoPresent {
		logoLine = "CONFIRMED: Identical logo detected"
	}

	productImageLine := "No identical product images confirmed"
	if visual.ProductSimilarity > 0 {
		productImageLine = fmt.Sprintf("%v", visual.ProductSimilarity)
	}

	additional := in.AdditionalEvidence
	if additional == "" {
		additional = "No additional conclusive evidence collected."
	}

	data := templateData{
		CaseID: caseID,
		Date:   now.Format("2006-01-02"),

		Brand:        in.Brand,
		OriginalURL:  in.OriginalURL,
		SuspectedURL: in.SuspectedURL,

		Text:               text,
		LogoLine:           logoLine,
		ColorScheme:        visual.ColorScheme,
		LayoutSimilarity:   visual.LayoutSimilarity,
		ProductImageLine:   productImageLine,
		AdditionalEvidence: additional,

		OverallScore:  in.Breakdown.OverallScore,
		EvidenceLevel: in.Breakdown.Tier.EvidenceLabel(),
		RiskLevel:     in.Breakdown.Tier.Label(),

		TextScore:      roundScore(in.Breakdown.TextScore),
		VisualScore:    roundScore(in.Breakdown.VisualScore),
		ProductScore:   roundScore(in.Breakdown.ProductScore),
		ConfusionScore: roundScore(in.Breakdown.ConfusionScore),

		WeightedText:      roundScore(in.Breakdown.WeightedText),
		WeightedVisual:    roundScore(in.Breakdown.WeightedVisual),
		WeightedProduct:   roundScore(in.Breakdown.WeightedProduct),
		WeightedConfusion: roundScore(in.Breakdown.WeightedConfusion),

		Thresholds: domain.DefaultEvidenceThresholds(),

		Recommendations: recommendations[in.Breakdown.Tier],
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return domain.BrandReport{}, fmt.Errorf("could not render report: %w", err)
	}

	// ID and UserID are assigned by the storage layer on persist
	return domain.BrandReport{
		Brand:        in.Brand,
		OriginalURL:  in.OriginalURL,
		SuspectedURL: in.SuspectedURL,
		CaseID:       caseID,
		Markdown:     buf.String(),
		Filename:     fmt.Sprintf("brand_infringement_report_%s_%s.md", in.Brand, timestamp),
		Breakdown:    in.Breakdown,
		CreatedAt:    now,
	}, nil
}
