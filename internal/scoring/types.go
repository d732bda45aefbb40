package scoring

// Dimension is one of the four bipolar personality axes.
type Dimension string

const (
	DimensionEI Dimension = "EI"
	DimensionSN Dimension = "SN"
	DimensionTF Dimension = "TF"
	DimensionJP Dimension = "JP"
)

// AllDimensions returns the dimensions in type-code order.
func AllDimensions() []Dimension {
	return []Dimension{DimensionEI, DimensionSN, DimensionTF, DimensionJP}
}

// Valid reports whether d is one of the four known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionEI, DimensionSN, DimensionTF, DimensionJP:
		return true
	}
	return false
}

// Poles returns the first and second pole letters of the dimension.
func (d Dimension) Poles() (first, second Pole) {
	switch d {
	case DimensionEI:
		return PoleE, PoleI
	case DimensionSN:
		return PoleS, PoleN
	case DimensionTF:
		return PoleT, PoleF
	case DimensionJP:
		return PoleJ, PoleP
	}
	return "", ""
}

// DisplayName returns a human-readable label for the dimension.
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionEI:
		return "Extraversion / Introversion"
	case DimensionSN:
		return "Sensing / Intuition"
	case DimensionTF:
		return "Thinking / Feeling"
	case DimensionJP:
		return "Judging / Perceiving"
	default:
		return string(d)
	}
}

// Pole is a single end of a dimension.
type Pole string

const (
	PoleE Pole = "E"
	PoleI Pole = "I"
	PoleS Pole = "S"
	PoleN Pole = "N"
	PoleT Pole = "T"
	PoleF Pole = "F"
	PoleJ Pole = "J"
	PoleP Pole = "P"
)

// Dimension returns the dimension the pole belongs to, or "" for an unknown pole.
func (p Pole) Dimension() Dimension {
	switch p {
	case PoleE, PoleI:
		return DimensionEI
	case PoleS, PoleN:
		return DimensionSN
	case PoleT, PoleF:
		return DimensionTF
	case PoleJ, PoleP:
		return DimensionJP
	}
	return ""
}

// IsFirst reports whether p is the first pole of its dimension.
func (p Pole) IsFirst() bool {
	first, _ := p.Dimension().Poles()
	return first != "" && p == first
}

// Name returns the long name of the pole.
func (p Pole) Name() string {
	switch p {
	case PoleE:
		return "Extraversion"
	case PoleI:
		return "Introversion"
	case PoleS:
		return "Sensing"
	case PoleN:
		return "Intuition"
	case PoleT:
		return "Thinking"
	case PoleF:
		return "Feeling"
	case PoleJ:
		return "Judging"
	case PoleP:
		return "Perceiving"
	default:
		return string(p)
	}
}

// Target says which pole agreement with a question supports.
type Target string

const (
	TargetFirst  Target = "first"
	TargetSecond Target = "second"
)

// Sign returns +1 for the first pole and -1 for the second.
func (t Target) Sign() int {
	if t == TargetFirst {
		return 1
	}
	return -1
}

// Question is a single Likert statement from a catalog.
type Question struct {
	ID        string    `json:"id" yaml:"id"`
	Text      string    `json:"text" yaml:"text"`
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Target    Target    `json:"target" yaml:"target"`
}

// Answers maps question ID to the chosen point on the scale.
// An unanswered question has no entry.
type Answers map[string]int

// Clone returns an independent copy of a.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Percentages maps each dimension to its first pole's share in [0,100].
type Percentages map[Dimension]int

// Get returns the percentage for d, or 50 when d is absent.
func (p Percentages) Get(d Dimension) int {
	if v, ok := p[d]; ok {
		return v
	}
	return NeutralPercent
}

// DimensionScore is the per-dimension outcome of scoring.
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	// Score is the signed sum of centered answers; positive favours the first pole.
	Score int `json:"score"`
	// Count is the number of answered questions tagged with this dimension.
	Count int `json:"count"`
	// Percent is the first pole's share, 0-100.
	Percent int `json:"percent"`
}

// Letter returns the pole chosen for this dimension. The first pole wins ties.
func (s DimensionScore) Letter() Pole {
	first, second := s.Dimension.Poles()
	if s.Score >= 0 {
		return first
	}
	return second
}

// Result is the outcome of scoring a full answer sheet.
type Result struct {
	Code       string           `json:"code"`
	Dimensions []DimensionScore `json:"dimensions"`
}

// Dimension returns the score for d. The zero value is returned if d is unknown.
func (r Result) Dimension(d Dimension) DimensionScore {
	for _, s := range r.Dimensions {
		if s.Dimension == d {
			return s
		}
	}
	return DimensionScore{}
}

// Percentages returns the first-pole percentage of every dimension.
func (r Result) Percentages() Percentages {
	p := make(Percentages, len(r.Dimensions))
	for _, s := range r.Dimensions {
		p[s.Dimension] = s.Percent
	}
	return p
}
