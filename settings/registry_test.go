package settings

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestRegisterSeedsDefault(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Definition{Key: "font.family", Default: "monospace"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if got := reg.String("font.family"); got != "monospace" {
		t.Fatalf("expected default value, got %q", got)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Definition{Key: "theme", Default: ""}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := reg.Register(Definition{Key: "theme", Default: ""}); err == nil {
		t.Fatal("expected an error for a duplicate key")
	}
}

func TestRegisterRejectsInvalidDefinitions(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(Definition{Default: "x"}); err == nil {
		t.Fatal("expected an error for an empty key")
	}
	if err := reg.Register(Definition{Key: "no.default"}); err == nil {
		t.Fatal("expected an error for a nil default")
	}
}

func TestApplyCoercesDocumentValues(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Definition{Key: "font.family", Default: "monospace"})
	reg.MustRegister(Definition{Key: "font.height", Default: 120})
	reg.MustRegister(Definition{Key: "line.spacing", Default: 1.0})
	reg.MustRegister(Definition{Key: "autosave", Default: false})
	reg.MustRegister(Definition{Key: "save.delay", Default: 2 * time.Second})

	err := reg.Apply(map[string]any{
		"font.family":  "Iosevka",
		"font.height":  int64(140),
		"line.spacing": 1.5,
		"autosave":     "true",
		"save.delay":   "750ms",
	})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if reg.String("font.family") != "Iosevka" {
		t.Fatalf("unexpected font.family %q", reg.String("font.family"))
	}
	if reg.Int("font.height") != 140 {
		t.Fatalf("unexpected font.height %d", reg.Int("font.height"))
	}
	if reg.Float("line.spacing") != 1.5 {
		t.Fatalf("unexpected line.spacing %v", reg.Float("line.spacing"))
	}
	if !reg.Bool("autosave") {
		t.Fatal("expected autosave true")
	}
	if reg.Duration("save.delay") != 750*time.Millisecond {
		t.Fatalf("unexpected save.delay %v", reg.Duration("save.delay"))
	}
}

func TestApplyCollectsRejectionsAndKeepsGoing(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Definition{Key: "font.height", Default: 120})
	reg.MustRegister(Definition{Key: "theme", Default: ""})

	err := reg.Apply(map[string]any{
		"font.height": "not-a-number",
		"theme":       "nightfox",
		"unknown.key": true,
	})
	var group *ApplyError
	if !errors.As(err, &group) {
		t.Fatalf("expected *ApplyError, got %v", err)
	}
	entries := group.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two rejected entries, got %+v", entries)
	}
	if entries[0].Key != "font.height" || entries[1].Key != "unknown.key" {
		t.Fatalf("unexpected rejection order: %+v", entries)
	}
	if reg.String("theme") != "nightfox" {
		t.Fatal("expected valid entries to apply despite rejections")
	}
	if reg.Int("font.height") != 120 {
		t.Fatal("expected rejected entry to leave the old value in place")
	}
}

func TestApplyErrorEntriesCopy(t *testing.T) {
	var group *ApplyError
	appendEntryError(&group, "theme", errors.New("boom"))
	entries := group.Entries()
	entries[0].Key = "mutated"
	if group.Entries()[0].Key != "theme" {
		t.Fatal("expected Entries to return a copy")
	}
	if !group.Has() {
		t.Fatal("expected Has to be true")
	}
}

func TestAccessorsTolerateMissingAndMistyped(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Definition{Key: "theme", Default: "dark"})

	if reg.Int("theme") != 0 || reg.Bool("theme") || reg.Float("theme") != 0 || reg.Duration("theme") != 0 {
		t.Fatal("expected zero values for mistyped accessors")
	}
	if reg.String("missing") != "" {
		t.Fatal("expected empty string for a missing key")
	}
	if _, ok := reg.Value("missing"); ok {
		t.Fatal("expected ok=false for a missing key")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Definition{Key: "theme", Default: "dark"})

	snap := reg.Snapshot()
	snap["theme"] = "mutated"
	if reg.String("theme") != "dark" {
		t.Fatal("expected snapshot mutation to leave the registry untouched")
	}
}

func TestKeysSorted(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Definition{Key: "theme", Default: ""})
	reg.MustRegister(Definition{Key: "font.family", Default: "monospace"})
	reg.MustRegister(Definition{Key: "font.height", Default: 120})

	want := []string{"font.family", "font.height", "theme"}
	if !reflect.DeepEqual(reg.Keys(), want) {
		t.Fatalf("expected %v, got %v", want, reg.Keys())
	}
}

func TestDefinitionLookup(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Definition{Key: "theme", Default: "", Doc: "Color theme"})

	def, ok := reg.Definition("theme")
	if !ok || def.Doc != "Color theme" {
		t.Fatalf("unexpected definition %+v (ok=%v)", def, ok)
	}
	if _, ok := reg.Definition("missing"); ok {
		t.Fatal("expected ok=false for a missing definition")
	}
}
