package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"Name", "name"},
		{"Rating", "rating"},
		{"IsGoalkeeper", "isGoalkeeper"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestClampRating(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{99, 5},
	}
	for _, tc := range cases {
		if got := ClampRating(tc.in); got != tc.want {
			t.Fatalf("ClampRating(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHasGoalkeeperPrefix(t *testing.T) {
	cases := map[string]bool{
		"GK-Bob":  true,
		"gk-bob":  true,
		"po-Ann":  true,
		"PO-":     true,
		"Bob":     false,
		"GKBob":   false,
		" GK-Bob": false,
		"":        false,
		"Bob GK-": false,
	}
	for name, want := range cases {
		if got := HasGoalkeeperPrefix(name); got != want {
			t.Fatalf("HasGoalkeeperPrefix(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewKeepsPrefixAndClamps(t *testing.T) {
	p := New("GK-Bob", 9)
	if p.Name != "GK-Bob" {
		t.Fatalf("expected prefix to stay in name, got %q", p.Name)
	}
	if !p.IsGoalkeeper {
		t.Fatalf("expected goalkeeper flag")
	}
	if p.Rating != MaxRating {
		t.Fatalf("expected rating clamped to %d, got %d", MaxRating, p.Rating)
	}
}
