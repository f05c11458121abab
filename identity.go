package machconf

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"
)

// FacetKind identifies one dimension of a machine's identity.
type FacetKind int

const (
	// KindName is the host's name as the OS reports it.
	KindName FacetKind = iota
	// KindType is the host's platform class, e.g. "linux" or "darwin".
	KindType
	// KindUser is the invoking user's real login name.
	KindUser
)

// String returns the kind's token as it appears in configuration and in
// composite candidate names.
func (k FacetKind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindType:
		return "type"
	case KindUser:
		return "user"
	}
	return "unknown"
}

func (k FacetKind) known() bool {
	switch k {
	case KindName, KindType, KindUser:
		return true
	}
	return false
}

// ParseFacetKind parses a facet kind token ("name", "type" or "user") as it
// appears in configuration files and command-line flags.
func ParseFacetKind(s string) (FacetKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return KindName, nil
	case "type":
		return KindType, nil
	case "user":
		return KindUser, nil
	}
	return 0, fmt.Errorf("machconf: unknown facet kind %q", s)
}

// Facet is one identity dimension of the current host: the raw string read
// from the environment and its normalized, filesystem-safe form.
type Facet struct {
	Kind  FacetKind
	Raw   string
	Value string
}

// Identity holds the three facets describing the current execution host.
type Identity struct {
	Name Facet
	Type Facet
	User Facet
}

// Facet returns the facet of the given kind, or the zero Facet for a kind
// outside the enum.
func (id Identity) Facet(kind FacetKind) Facet {
	switch kind {
	case KindName:
		return id.Name
	case KindType:
		return id.Type
	case KindUser:
		return id.User
	}
	return Facet{}
}

// probes supplies the raw identity reads. Each is overridable through an
// Option so tests and unusual hosts can substitute their own.
type probes struct {
	hostname func() (string, error)
	platform func() string
	username func() string
}

func defaultProbes() probes {
	return probes{
		hostname: os.Hostname,
		platform: func() string { return runtime.GOOS },
		username: loginName,
	}
}

// loginName resolves the real login identity of the invoking user. Privilege
// elevation tools record the original account in SUDO_USER or DOAS_USER;
// those take precedence so machine files follow the human, not root.
func loginName() string {
	for _, key := range []string{"SUDO_USER", "DOAS_USER"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, key := range []string{"USER", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// resolveIdentity derives all three facets from the given probes. A probe
// failure degrades that facet to the empty string; normalizing the empty
// string is the defined degenerate outcome, not an error.
func resolveIdentity(p probes) Identity {
	host, err := p.hostname()
	if err != nil {
		host = ""
	}
	return Identity{
		Name: newFacet(KindName, host),
		Type: newFacet(KindType, p.platform()),
		User: newFacet(KindUser, p.username()),
	}
}

func newFacet(kind FacetKind, raw string) Facet {
	return Facet{Kind: kind, Raw: raw, Value: Safe(raw)}
}

// CurrentIdentity resolves the identity of the executing host using the
// default probes. Every call re-reads the environment; nothing is cached.
func CurrentIdentity() Identity {
	return resolveIdentity(defaultProbes())
}
