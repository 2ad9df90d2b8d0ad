package config

import "testing"

func TestParseRoster(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "alice,bob,carol,dave", want: []string{"alice", "bob", "carol", "dave"}},
		{raw: " alice , bob ", want: []string{"alice", "bob"}},
		{raw: "alice,,bob,", want: []string{"alice", "bob"}},
		{raw: "solo", want: []string{"solo"}},
		{raw: "", want: []string{}},
	}

	for _, tt := range tests {
		got := parseRoster(tt.raw)
		if len(got) != len(tt.want) {
			t.Errorf("parseRoster(%q) = %v, want %v", tt.raw, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseRoster(%q) = %v, want %v", tt.raw, got, tt.want)
				break
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("NOTIFY_ROSTER", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if len(cfg.Roster) != 4 || cfg.Roster[0] != "alice" {
		t.Errorf("expected default demo roster, got %v", cfg.Roster)
	}
}

func TestLoadRosterOverride(t *testing.T) {
	t.Setenv("NOTIFY_ROSTER", "x,y")

	cfg := Load()
	if len(cfg.Roster) != 2 || cfg.Roster[0] != "x" || cfg.Roster[1] != "y" {
		t.Errorf("expected roster [x y], got %v", cfg.Roster)
	}
}
