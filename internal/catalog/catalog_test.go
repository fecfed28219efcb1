package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/android-template-generator/internal/model"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Failed to load embedded catalog: %v", err)
	}

	var tiers []model.Tier
	for _, d := range c.Templates() {
		tiers = append(tiers, d.Tier)
	}
	if diff := cmp.Diff(model.Tiers(), tiers); diff != "" {
		t.Errorf("tier order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(tiers, c.Tiers()); diff != "" {
		t.Errorf("Tiers() mismatch (-want +got):\n%s", diff)
	}

	got := c.Tiers()
	got[0] = "changed"
	if c.Tiers()[0] != model.TierBasic {
		t.Error("Tiers() must return a copy")
	}

	again, _ := Default()
	if again != c {
		t.Error("Expected Default to return the same instance")
	}
}

func TestCatalog_Availability(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	tests := []struct {
		tier      model.Tier
		available bool
		status    string
	}{
		{model.TierBasic, true, "Released"},
		{model.TierIntermediate, true, "Coming Soon"},
		{model.TierAdvanced, false, "Planned"},
	}

	for _, test := range tests {
		d, ok := c.Get(test.tier)
		if !ok {
			t.Fatalf("Missing tier %s", test.tier)
		}
		if d.Available != test.available || c.IsAvailable(test.tier) != test.available {
			t.Errorf("Tier %s availability = %v, expected %v", test.tier, d.Available, test.available)
		}
		if d.Status != test.status {
			t.Errorf("Tier %s status = %q, expected %q", test.tier, d.Status, test.status)
		}
		if d.Structure == nil || d.Structure.Name != "MyAndroidApp" {
			t.Errorf("Tier %s has unexpected root %+v", test.tier, d.Structure)
		}
	}

	if c.IsAvailable(model.Tier("expert")) {
		t.Error("Unknown tier must not be available")
	}
}

func TestCatalog_TreesWellFormed(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	var check func(tier model.Tier, n *Node)
	check = func(tier model.Tier, n *Node) {
		if n.Kind != KindFile && n.Kind != KindFolder {
			t.Errorf("%s: node %q has kind %q", tier, n.Name, n.Kind)
		}
		if n.Kind == KindFile && len(n.Children) > 0 {
			t.Errorf("%s: file %q has children", tier, n.Name)
		}
		for _, child := range n.Children {
			check(tier, child)
		}
	}
	for _, d := range c.Templates() {
		check(d.Tier, d.Structure)
	}

	basic, _ := c.Get(model.TierBasic)
	files, folders := basic.Structure.Count()
	if files != 9 || folders != 10 {
		t.Errorf("Basic tree has %d files and %d folders, expected 9 and 10", files, folders)
	}
}

func TestParse_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "file with children",
			content: `
templates:
  - tier: basic
    title: Basic
    description: d
    status: Released
    available: true
    structure:
      name: Root
      type: folder
      children:
        - name: a.kt
          type: file
          children:
            - {name: b.kt, type: file}
`,
		},
		{
			name: "unknown tier",
			content: `
templates:
  - tier: expert
    title: Expert
    description: d
    status: Planned
    available: false
    structure: {name: Root, type: folder}
`,
		},
		{
			name: "unknown node kind",
			content: `
templates:
  - tier: basic
    title: Basic
    description: d
    status: Released
    available: true
    structure:
      name: Root
      type: folder
      children:
        - {name: link, type: symlink}
`,
		},
		{
			name: "missing structure",
			content: `
templates:
  - tier: basic
    title: Basic
    description: d
    status: Released
    available: true
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Parse([]byte(test.content)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestParse_DuplicateTier(t *testing.T) {
	content := `
templates:
  - {tier: basic, title: A, description: d, status: s, available: true, structure: {name: R, type: folder}}
  - {tier: basic, title: B, description: d, status: s, available: true, structure: {name: R, type: folder}}
`
	_, err := Parse([]byte(content))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Expected duplicate tier error, got %v", err)
	}
}
