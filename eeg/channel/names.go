package channel

import "strings"

// DerivationSep joins a label with its derivation tags when rendering.
const DerivationSep = "-"

// Name is a structured channel name.
type Name struct {
	// Original is the (cleaned) label the channel was recorded under.
	Original string
	// Derivations lists the tags appended by transforms, oldest first.
	Derivations []string
}

// NewName returns an underived Name.
func NewName(label string) Name {
	return Name{Original: label}
}

// String renders the name as Original followed by "-tag" per derivation.
func (n Name) String() string {
	if len(n.Derivations) == 0 {
		return n.Original
	}

	var b strings.Builder
	b.WriteString(n.Original)
	for _, d := range n.Derivations {
		b.WriteString(DerivationSep)
		b.WriteString(d)
	}

	return b.String()
}

// Derive returns a copy of n with tag appended. n is not modified.
func (n Name) Derive(tag string) Name {
	d := make([]string, len(n.Derivations), len(n.Derivations)+1)
	copy(d, n.Derivations)

	return Name{Original: n.Original, Derivations: append(d, tag)}
}

// IsDerived reports whether any transform has renamed the channel.
func (n Name) IsDerived() bool {
	return len(n.Derivations) > 0
}

// Names is an ordered, row-aligned list of channel names.
type Names []Name

// NewNames wraps plain labels.
func NewNames(labels []string) Names {
	ns := make(Names, len(labels))
	for i, l := range labels {
		ns[i] = NewName(l)
	}

	return ns
}

// Strings returns the rendered names.
func (ns Names) Strings() []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.String()
	}

	return out
}

// Index returns the first index whose rendered name equals label, or -1.
func (ns Names) Index(label string) int {
	for i, n := range ns {
		if n.String() == label {
			return i
		}
	}

	return -1
}

// Clone returns a deep copy.
func (ns Names) Clone() Names {
	out := make(Names, len(ns))
	for i, n := range ns {
		out[i] = Name{Original: n.Original}
		if len(n.Derivations) > 0 {
			out[i].Derivations = append([]string(nil), n.Derivations...)
		}
	}

	return out
}
