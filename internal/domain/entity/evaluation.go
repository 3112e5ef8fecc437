package entity

// EvaluationRequest is the caller-supplied input for one evaluation.
// Rubrics is free text and may itself be structured or prose.
type EvaluationRequest struct {
	Question string
	Rubrics  string
	Response string
}

// Evaluation is the parsed model reply as a generic JSON document.
// It stays generic so that keys absent upstream stay absent in the
// response and unknown fields pass through untouched.
type Evaluation map[string]any

// Normalize rewrites every score field onto the canonical 0-100
// integer scale, in place. overall_score and each rubrics[i].score
// are normalized independently; a missing key is skipped, never
// fabricated.
func (e Evaluation) Normalize() {
	if v, ok := e["overall_score"]; ok {
		e["overall_score"] = NormalizeScore(v)
	}
	rubrics, ok := e["rubrics"].([]any)
	if !ok {
		return
	}
	for _, r := range rubrics {
		criterion, ok := r.(map[string]any)
		if !ok {
			continue
		}
		if v, ok := criterion["score"]; ok {
			criterion["score"] = NormalizeScore(v)
		}
	}
}

// CriterionScore is one scored rubric dimension in the canonical
// response shape.
type CriterionScore struct {
	Criterion string `json:"criterion"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
}

// EvaluationResult documents the canonical evaluation contract:
// field names and the 0-100 score range are fixed for callers.
type EvaluationResult struct {
	Rubrics      []CriterionScore `json:"rubrics"`
	OverallScore int              `json:"overall_score"`
	Summary      string           `json:"summary"`
}
