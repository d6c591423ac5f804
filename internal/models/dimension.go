// internal/models/dimension.go
package models

import "encoding/json"

// Dimension is one of the five fixed assessment axes.
type Dimension string

const (
	DimensionR Dimension = "R" // resilience
	DimensionE Dimension = "E" // employment readiness
	DimensionA Dimension = "A" // career aspirations
	DimensionD Dimension = "D" // career adaptability
	DimensionY Dimension = "Y" // willingness to work
)

// AllDimensions lists the dimensions in their fixed scoring order.
var AllDimensions = []Dimension{DimensionR, DimensionE, DimensionA, DimensionD, DimensionY}

var dimensionTitles = map[Dimension]string{
	DimensionR: "Resilience",
	DimensionE: "Employment Readiness",
	DimensionA: "Career Aspirations",
	DimensionD: "Career Adaptability",
	DimensionY: "Willingness to Work",
}

// Title returns the display title used in generated reports.
func (d Dimension) Title() string {
	return dimensionTitles[d]
}

// ParseDimension maps a raw code to a known dimension.
func ParseDimension(raw string) (Dimension, bool) {
	d := Dimension(raw)
	_, ok := dimensionTitles[d]
	return d, ok
}

// DimensionList carries the dimension declaration of a question. Objective
// questions declare a single code; subjective questions may declare a list.
// Both JSON shapes unmarshal into the same type.
type DimensionList []string

func (dl *DimensionList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*dl = nil
		} else {
			*dl = DimensionList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*dl = DimensionList(many)
	return nil
}

func (dl DimensionList) MarshalJSON() ([]byte, error) {
	if len(dl) == 1 {
		return json.Marshal(dl[0])
	}
	return json.Marshal([]string(dl))
}

// Known filters the declaration down to recognized dimension codes.
func (dl DimensionList) Known() []Dimension {
	out := make([]Dimension, 0, len(dl))
	for _, raw := range dl {
		if d, ok := ParseDimension(raw); ok {
			out = append(out, d)
		}
	}
	return out
}

// First returns the first recognized dimension, if any.
func (dl DimensionList) First() (Dimension, bool) {
	known := dl.Known()
	if len(known) == 0 {
		return "", false
	}
	return known[0], true
}

// DimensionScores maps every fixed dimension to an integer score. All five
// keys are always present, defaulting to 0.
type DimensionScores map[Dimension]int

// NewDimensionScores returns a zeroed score map over all five dimensions.
func NewDimensionScores() DimensionScores {
	scores := make(DimensionScores, len(AllDimensions))
	for _, d := range AllDimensions {
		scores[d] = 0
	}
	return scores
}

// Plus returns the per-dimension sum of two score maps.
func (s DimensionScores) Plus(other DimensionScores) DimensionScores {
	total := NewDimensionScores()
	for _, d := range AllDimensions {
		total[d] = s[d] + other[d]
	}
	return total
}
