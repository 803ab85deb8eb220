package options

import "strings"

// PolicyEnum is a set of flags tuning how far hydration descends and how it fails.
type PolicyEnum int

const (
	PolicyDescendPresent  PolicyEnum = 1 << iota // hydrate composites that are already present
	PolicyDescendElements                        // hydrate composite elements of present slices, arrays and maps
	PolicyLeaveCycles                            // leave self-referential fields absent instead of failing
	PolicySkipUnsupported                        // leave fields of unsupported types absent instead of failing
	PolicyUTC                                    // timestamp defaults are converted to UTC

	PolicyAll     PolicyEnum = (1 << iota) - 1 // all policies combined
	PolicyNone    PolicyEnum = 0               // no policies selected
	PolicyDefault            = PolicyDescendPresent | PolicyDescendElements | PolicyUTC
)

var policyNames = []struct {
	flag PolicyEnum
	name string
}{
	{PolicyDescendPresent, "descend_present"},
	{PolicyDescendElements, "descend_elements"},
	{PolicyLeaveCycles, "leave_cycles"},
	{PolicySkipUnsupported, "skip_unsupported"},
	{PolicyUTC, "utc"},
}

// Has reports whether every flag in flag is set.
func (p PolicyEnum) Has(flag PolicyEnum) bool {
	return p&flag == flag
}

// With returns p with flag set or cleared.
func (p PolicyEnum) With(flag PolicyEnum, on bool) PolicyEnum {
	if on {
		return p | flag
	}

	return p &^ flag
}

// String lists the set flags joined by "|", or "none".
func (p PolicyEnum) String() string {
	var parts []string
	for _, pn := range policyNames {
		if p.Has(pn.flag) {
			parts = append(parts, pn.name)
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// ParsePolicy parses the names produced by String; unknown names are returned
// in the second result.
func ParsePolicy(s string) (PolicyEnum, []string) {
	var (
		p       PolicyEnum
		unknown []string
	)

	if s == "" || s == "none" {
		return PolicyNone, nil
	}

	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)

		found := false
		for _, pn := range policyNames {
			if pn.name == part {
				p |= pn.flag
				found = true
				break
			}
		}

		if !found {
			unknown = append(unknown, part)
		}
	}

	return p, unknown
}
