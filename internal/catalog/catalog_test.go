package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalogLoads(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if cat.Firm() != "Winchester & Associates" {
		t.Fatalf("firm = %q", cat.Firm())
	}
	if got := len(cat.PracticeAreas()); got != 6 {
		t.Fatalf("practice areas = %d, want 6", got)
	}
	if !cat.IsPracticeArea("Tax Law") {
		t.Fatalf("expected Tax Law to be a practice area")
	}
	if cat.IsPracticeArea("Jonathan Winchester III") {
		t.Fatalf("attorney must not count as a practice area")
	}
	for _, item := range cat.PracticeAreas() {
		if item.Category != item.Title {
			t.Fatalf("practice area %q category = %q, want its title", item.Title, item.Category)
		}
		if item.Kind != KindPracticeArea {
			t.Fatalf("practice area %q kind = %s", item.Title, item.Kind)
		}
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	want := []string{"Corporate Law", "Intellectual Property", "Real Estate", "Family Law", "Criminal Defense", "Tax Law"}
	if diff := cmp.Diff(want, cat.Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if cat.HasCategory(FilterAll) {
		t.Fatalf("%q must not be a category", FilterAll)
	}
}

func TestFilterProjectsByCategory(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if got, want := len(cat.Filter(FilterAll)), len(cat.All()); got != want {
		t.Fatalf("filter all = %d items, want %d", got, want)
	}
	var titles []string
	for _, item := range cat.Filter("Intellectual Property") {
		titles = append(titles, item.Title)
	}
	want := []string{"Intellectual Property", "Elizabeth Blackwood", "IP Rights Protection"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("filtered titles mismatch (-want +got):\n%s", diff)
	}
	if got := cat.Filter("Maritime Law"); len(got) != 0 {
		t.Fatalf("unknown tag matched %d items", len(got))
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	areas := cat.PracticeAreas()
	areas[0].Title = "Mutated"
	if cat.PracticeAreas()[0].Title == "Mutated" {
		t.Fatalf("catalog leaked its backing slice")
	}
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantValid bool
	}{
		{
			name: "valid",
			yaml: `version: 1
firm: Test & Co
practice_areas:
  - title: Tax Law
    description: Taxes.
attorneys:
  - title: Ann Smith
    category: Tax Law
    description: Partner.
`,
			wantValid: true,
		},
		{
			name: "duplicate-title",
			yaml: `firm: Test & Co
practice_areas:
  - title: Tax Law
  - title: Tax Law
`,
			wantValid: false,
		},
		{
			name: "dangling-category",
			yaml: `firm: Test & Co
practice_areas:
  - title: Tax Law
case_results:
  - title: Big Win
    category: Maritime Law
`,
			wantValid: false,
		},
		{
			name: "missing-firm",
			yaml: `practice_areas:
  - title: Tax Law
`,
			wantValid: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			report, err := ValidateFile(path)
			if err != nil {
				t.Fatalf("validate file: %v", err)
			}
			if report.IsValid() != tt.wantValid {
				t.Fatalf("IsValid() = %v, want %v (errors: %v)", report.IsValid(), tt.wantValid, report.Errors)
			}
		})
	}
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("firm: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected load error for empty catalog")
	}
}
