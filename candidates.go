package machconf

import "fmt"

// Tier is one precedence level of a load pass: the facet it represents and
// the candidate file names tried for it, composite form first.
type Tier struct {
	Kind       FacetKind
	Facet      Facet
	Candidates [2]string
}

// DefaultOrder tries host-class files first, then host-name files, then
// user files, so later tiers can override what earlier ones set up.
var DefaultOrder = []FacetKind{KindType, KindName, KindUser}

// Plan builds the ordered candidate tiers for an identity. Tier i corresponds
// to order[i]; each tier pairs the composite "<kind>-<value>" name with the
// bare value name, so a user who shares a name with a host stays
// distinguishable. Kinds outside the enum are skipped. Plan is pure: equal
// inputs yield equal plans and no state survives between calls.
func Plan(id Identity, order []FacetKind) []Tier {
	tiers := make([]Tier, 0, len(order))
	for _, kind := range order {
		if !kind.known() {
			continue
		}
		f := id.Facet(kind)
		tiers = append(tiers, Tier{
			Kind:  kind,
			Facet: f,
			Candidates: [2]string{
				Safe(kind.String() + "-" + f.Value),
				f.Value,
			},
		})
	}
	return tiers
}

// ParseOrder parses a precedence order from configuration tokens. Duplicates
// are rejected; an empty token list yields nil so callers can fall back to
// DefaultOrder.
func ParseOrder(tokens []string) ([]FacetKind, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	order := make([]FacetKind, 0, len(tokens))
	seen := make(map[FacetKind]bool, len(tokens))
	for _, tok := range tokens {
		kind, err := ParseFacetKind(tok)
		if err != nil {
			return nil, err
		}
		if seen[kind] {
			return nil, fmt.Errorf("machconf: facet kind %q appears twice in order", kind)
		}
		seen[kind] = true
		order = append(order, kind)
	}
	return order, nil
}
