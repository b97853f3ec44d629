package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report captures validation results for a catalog file.
type Report struct {
	Path   string
	Firm   string
	Items  int
	Errors []error
}

// ValidateFile reads and validates a catalog YAML file.
func ValidateFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	file.normalize()
	return &Report{
		Path:   path,
		Firm:   file.Firm,
		Items:  len(file.PracticeAreas) + len(file.Attorneys) + len(file.CaseResults),
		Errors: Validate(&file),
	}, nil
}

// IsValid reports whether the validation passed.
func (r *Report) IsValid() bool {
	return r != nil && len(r.Errors) == 0
}

// Validate checks a normalized catalog file and returns every problem found.
func Validate(file *File) []error {
	if file == nil {
		return []error{fmt.Errorf("catalog is nil")}
	}
	var errs []error
	if file.Version != 1 {
		errs = append(errs, fmt.Errorf("version must be 1"))
	}
	if file.Firm == "" {
		errs = append(errs, fmt.Errorf("firm is required"))
	}
	if len(file.PracticeAreas) == 0 {
		errs = append(errs, fmt.Errorf("practice_areas must not be empty"))
	}

	areas := map[string]struct{}{}
	errs = append(errs, validateItems("practice_areas", file.PracticeAreas, func(item Item) {
		areas[item.Title] = struct{}{}
	})...)
	errs = append(errs, validateItems("attorneys", file.Attorneys, nil)...)
	errs = append(errs, validateItems("case_results", file.CaseResults, nil)...)

	for index, item := range file.Attorneys {
		if _, ok := areas[item.Category]; item.Category != "" && !ok {
			errs = append(errs, fmt.Errorf("attorneys[%d].category %q is not a practice area", index, item.Category))
		}
	}
	for index, item := range file.CaseResults {
		if _, ok := areas[item.Category]; item.Category != "" && !ok {
			errs = append(errs, fmt.Errorf("case_results[%d].category %q is not a practice area", index, item.Category))
		}
	}
	return errs
}

func validateItems(field string, items []Item, seen func(Item)) []error {
	var errs []error
	titles := map[string]struct{}{}
	for index, item := range items {
		if item.Title == "" {
			errs = append(errs, fmt.Errorf("%s[%d].title is required", field, index))
			continue
		}
		if _, exists := titles[item.Title]; exists {
			errs = append(errs, fmt.Errorf("%s[%d].title duplicates %q", field, index, item.Title))
		}
		titles[item.Title] = struct{}{}
		if item.Category == "" {
			errs = append(errs, fmt.Errorf("%s[%d].category is required", field, index))
		}
		if item.Category == FilterAll {
			errs = append(errs, fmt.Errorf("%s[%d].category %q is reserved", field, index, FilterAll))
		}
		if seen != nil {
			seen(item)
		}
	}
	return errs
}
