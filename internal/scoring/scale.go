package scoring

import "strconv"

// Scale describes an odd-point agreement scale with a neutral midpoint.
type Scale struct {
	Points int
}

// Likert5 is the 1-5 scale used by the bundled catalogs.
var Likert5 = Scale{Points: 5}

// Center returns the neutral value. For Likert5 it is 3.
func (s Scale) Center() int {
	return (s.Points + 1) / 2
}

// MaxDeviation returns the largest distance an answer can sit from the
// center. For Likert5 it is 2, so each question contributes -2..+2.
func (s Scale) MaxDeviation() int {
	return s.Points / 2
}

// Contains reports whether v is a point on the scale.
func (s Scale) Contains(v int) bool {
	return v >= 1 && v <= s.Points
}

// Labels returns the display labels for each point, lowest first.
// Only the 5- and 7-point scales have worded labels.
func (s Scale) Labels() []string {
	switch s.Points {
	case 5:
		return []string{"Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree"}
	case 7:
		return []string{
			"Strongly disagree", "Disagree", "Somewhat disagree", "Neutral",
			"Somewhat agree", "Agree", "Strongly agree",
		}
	}
	labels := make([]string, s.Points)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}
