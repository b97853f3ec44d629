package chart

import (
	"fmt"
	"sort"
	"strings"
)

// Preset names.
const (
	PresetSuccessRate  = "success-rate"
	PresetCaseOutcomes = "case-outcomes"
)

// Spec is the declarative configuration handed to a charting engine.
type Spec struct {
	Kind  Kind
	Title string
	// Smooth asks the engine for a curved line. The series itself is never
	// smoothed.
	Smooth bool
	Series Series
}

var presets = map[string]func() (Spec, error){
	PresetSuccessRate:  successRateSpec,
	PresetCaseOutcomes: caseOutcomeSpec,
}

// Preset builds one of the bundled chart specs.
func Preset(name string) (Spec, error) {
	build, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Spec{}, fmt.Errorf("chart: unknown preset %q (want one of %s)", name, strings.Join(PresetNames(), ", "))
	}
	return build()
}

// PresetNames lists the bundled presets alphabetically.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func successRateSpec() (Spec, error) {
	series, err := BuildSeries("Success Rate", []Point{
		{Label: "2020", Value: 92},
		{Label: "2021", Value: 94},
		{Label: "2022", Value: 96},
		{Label: "2023", Value: 97},
		{Label: "2024", Value: 98},
	})
	if err != nil {
		return Spec{}, err
	}
	return Spec{Kind: KindLine, Title: "Our Success Rate", Smooth: true, Series: series}, nil
}

func caseOutcomeSpec() (Spec, error) {
	series, err := BuildSeries("Case Results", []Point{
		{Label: "Successful", Value: 95},
		{Label: "Pending", Value: 5},
	})
	if err != nil {
		return Spec{}, err
	}
	return Spec{Kind: KindPie, Title: "Case Success Rate", Series: series}, nil
}
