package scoring

import "math"

// NeutralPercent is reported for a dimension that received no answers.
const NeutralPercent = 50

// Engine scores answer sheets against a scale.
type Engine struct {
	scale Scale
}

// NewEngine returns an Engine for the given scale.
func NewEngine(scale Scale) *Engine {
	return &Engine{scale: scale}
}

// Scale returns the scale the engine scores against.
func (e *Engine) Scale() Scale {
	return e.scale
}

// Score computes the type code and per-dimension breakdown on the Likert5 scale.
func Score(questions []Question, answers Answers) Result {
	return NewEngine(Likert5).Score(questions, answers)
}

// Score walks questions in order and accumulates every answered one into its
// dimension. Unanswered questions are skipped. Answers whose ID matches no
// question are ignored. Neither input is modified.
func (e *Engine) Score(questions []Question, answers Answers) Result {
	dims := AllDimensions()
	scores := make(map[Dimension]*DimensionScore, len(dims))
	for _, d := range dims {
		scores[d] = &DimensionScore{Dimension: d}
	}

	center := e.scale.Center()
	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		ds, ok := scores[q.Dimension]
		if !ok {
			continue
		}

		// Neutral answers still count toward the denominator.
		ds.Count++
		centered := value - center
		if centered == 0 {
			continue
		}
		ds.Score += centered * q.Target.Sign()
	}

	result := Result{Dimensions: make([]DimensionScore, 0, len(dims))}
	code := make([]byte, 0, len(dims))
	for _, d := range dims {
		ds := scores[d]
		ds.Percent = e.percent(ds.Score, ds.Count)
		result.Dimensions = append(result.Dimensions, *ds)
		code = append(code, string(ds.Letter())...)
	}
	result.Code = string(code)
	return result
}

// percent maps a signed score onto the first pole's share of 0-100.
func (e *Engine) percent(score, count int) int {
	maxScore := count * e.scale.MaxDeviation()
	if maxScore == 0 {
		return NeutralPercent
	}
	p := int(math.Round(50 + (float64(score)/float64(maxScore))*50))
	return max(0, min(100, p))
}
