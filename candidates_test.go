package machconf

import (
	"reflect"
	"testing"
)

func gridIdentity() Identity {
	return Identity{
		Name: newFacet(KindName, "bob-pc"),
		Type: newFacet(KindType, "gnu-linux"),
		User: newFacet(KindUser, "bob"),
	}
}

func TestPlanCandidateGrid(t *testing.T) {
	tiers := Plan(gridIdentity(), []FacetKind{KindType, KindName, KindUser})

	want := [][2]string{
		{"type-gnu-linux", "gnu-linux"},
		{"name-bob-pc", "bob-pc"},
		{"user-bob", "bob"},
	}
	if len(tiers) != len(want) {
		t.Fatalf("expected %d tiers, got %d", len(want), len(tiers))
	}
	for i, tier := range tiers {
		if tier.Candidates != want[i] {
			t.Fatalf("tier %d: expected %v, got %v", i, want[i], tier.Candidates)
		}
	}
	if tiers[0].Kind != KindType || tiers[1].Kind != KindName || tiers[2].Kind != KindUser {
		t.Fatalf("tier kinds do not preserve order: %+v", tiers)
	}
}

func TestPlanPreservesOrder(t *testing.T) {
	id := gridIdentity()
	order := []FacetKind{KindUser, KindType, KindName}

	tiers := Plan(id, order)
	for i, kind := range order {
		if tiers[i].Kind != kind {
			t.Fatalf("tier %d: expected kind %v, got %v", i, kind, tiers[i].Kind)
		}
	}
}

func TestPlanPure(t *testing.T) {
	id := gridIdentity()
	first := Plan(id, DefaultOrder)
	second := Plan(id, DefaultOrder)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected equal plans, got %+v then %+v", first, second)
	}
}

func TestPlanSkipsUnknownKinds(t *testing.T) {
	tiers := Plan(gridIdentity(), []FacetKind{KindName, FacetKind(42)})
	if len(tiers) != 1 || tiers[0].Kind != KindName {
		t.Fatalf("expected unknown kinds skipped, got %+v", tiers)
	}
}

func TestPlanEmptyFacetValue(t *testing.T) {
	id := gridIdentity()
	id.Name = newFacet(KindName, "")

	tiers := Plan(id, []FacetKind{KindName})
	if tiers[0].Candidates != [2]string{"name", ""} {
		t.Fatalf("unexpected candidates for empty facet: %v", tiers[0].Candidates)
	}
}

func TestPlanNormalizesCompositeName(t *testing.T) {
	id := gridIdentity()
	tiers := Plan(id, []FacetKind{KindUser})
	if got := tiers[0].Candidates[0]; got != Safe(got) {
		t.Fatalf("composite candidate %q is not normalized", got)
	}
}

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder([]string{"user", "type", "name"})
	if err != nil {
		t.Fatalf("ParseOrder returned error: %v", err)
	}
	want := []FacetKind{KindUser, KindType, KindName}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
}

func TestParseOrderEmpty(t *testing.T) {
	order, err := ParseOrder(nil)
	if err != nil || order != nil {
		t.Fatalf("expected nil order for empty tokens, got %v / %v", order, err)
	}
}

func TestParseOrderRejectsDuplicates(t *testing.T) {
	if _, err := ParseOrder([]string{"type", "type"}); err == nil {
		t.Fatal("expected an error for duplicate kinds")
	}
}

func TestParseOrderRejectsUnknownToken(t *testing.T) {
	if _, err := ParseOrder([]string{"type", "galaxy"}); err == nil {
		t.Fatal("expected an error for an unknown kind token")
	}
}
