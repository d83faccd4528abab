package assets

import "testing"

func TestCatalog(t *testing.T) {
	magnets := Catalog()
	if len(magnets) != 3 {
		t.Fatalf("Catalog() returned %d magnets, want 3", len(magnets))
	}

	seen := make(map[string]bool)
	for _, m := range magnets {
		if m.Slug == "" || m.Title == "" || m.Filename == "" {
			t.Errorf("magnet %+v missing slug, title or filename", m)
		}
		if seen[m.Filename] {
			t.Errorf("duplicate filename %q", m.Filename)
		}
		seen[m.Filename] = true
		if len(m.Sections) == 0 {
			t.Errorf("magnet %q has no sections", m.Slug)
		}
	}
}

func TestBySlug(t *testing.T) {
	tests := []struct {
		slug     string
		found    bool
		path     string
		download string
	}{
		{"workflow-checklist", true, "/workflow-checklist", "/workflow-checklist/download"},
		{"top-10-automations", true, "/top-10-automations", "/top-10-automations/download"},
		{"automation-guide", true, "/automation-guide", "/automation-guide/download"},
		{"no-such-magnet", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			m, ok := BySlug(tt.slug)
			if ok != tt.found {
				t.Fatalf("BySlug(%q) ok = %v, want %v", tt.slug, ok, tt.found)
			}
			if !tt.found {
				return
			}
			if got := m.Path(); got != tt.path {
				t.Errorf("Path() = %q, want %q", got, tt.path)
			}
			if got := m.DownloadPath(); got != tt.download {
				t.Errorf("DownloadPath() = %q, want %q", got, tt.download)
			}
		})
	}
}

func TestTiers(t *testing.T) {
	tiers := Tiers()
	if len(tiers) != 4 {
		t.Fatalf("Tiers() returned %d tiers, want 4", len(tiers))
	}
	if tiers[0].Price != "Free" {
		t.Errorf("first tier price = %q, want Free", tiers[0].Price)
	}
	for _, tier := range tiers {
		if tier.Name == "" || tier.Price == "" || tier.Blurb == "" {
			t.Errorf("tier %+v has empty fields", tier)
		}
	}
}
