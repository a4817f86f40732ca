package models

import "sort"

// BoolRequirement is a scholarship constraint over a boolean student attribute.
type BoolRequirement uint8

// Boolean requirement states.
const (
	BoolUnconstrained BoolRequirement = iota
	RequireTrue
	RequireFalse
)

// NewBoolRequirement converts a nullable column value into a requirement.
func NewBoolRequirement(v *bool) BoolRequirement {
	switch {
	case v == nil:
		return BoolUnconstrained
	case *v:
		return RequireTrue
	default:
		return RequireFalse
	}
}

// Constrained reports whether the scholarship declared a value for this facet.
func (r BoolRequirement) Constrained() bool {
	return r == RequireTrue || r == RequireFalse
}

// Allows reports whether the student value satisfies the requirement.
func (r BoolRequirement) Allows(v bool) bool {
	switch r {
	case RequireTrue:
		return v
	case RequireFalse:
		return !v
	default:
		return true
	}
}

// Ptr returns the nullable representation, nil when unconstrained.
func (r BoolRequirement) Ptr() *bool {
	if !r.Constrained() {
		return nil
	}
	v := r == RequireTrue
	return &v
}

// EnumRequirement is either unconstrained or requires an exact value.
type EnumRequirement struct {
	value       string
	constrained bool
}

// AnyValue returns an unconstrained enum requirement.
func AnyValue() EnumRequirement {
	return EnumRequirement{}
}

// RequireEquals returns a requirement satisfied only by value (case-sensitive).
func RequireEquals(value string) EnumRequirement {
	return EnumRequirement{value: value, constrained: true}
}

// NewEnumRequirement converts a nullable column value into a requirement.
func NewEnumRequirement(v *string) EnumRequirement {
	if v == nil {
		return AnyValue()
	}
	return RequireEquals(*v)
}

// Constrained reports whether a value is required.
func (r EnumRequirement) Constrained() bool { return r.constrained }

// Value is the required value; empty when unconstrained.
func (r EnumRequirement) Value() string { return r.value }

// Allows reports whether the student value satisfies the requirement. A nil
// student value never satisfies a constrained requirement.
func (r EnumRequirement) Allows(v *string) bool {
	if !r.constrained {
		return true
	}
	return v != nil && *v == r.value
}

type valueSet map[string]struct{}

func newValueSet(values []string) valueSet {
	set := make(valueSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s valueSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s valueSet) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// MandatoryAllowlist lists the values a scholarship accepts for a facet every
// scholarship must declare. An empty list admits nobody.
type MandatoryAllowlist struct {
	values valueSet
}

// NewMandatoryAllowlist builds an allow-list from values, dropping duplicates.
func NewMandatoryAllowlist(values ...string) MandatoryAllowlist {
	return MandatoryAllowlist{values: newValueSet(values)}
}

// Permits reports whether v is one of the declared values.
func (a MandatoryAllowlist) Permits(v string) bool {
	return a.values.has(v)
}

// Len returns the number of distinct values.
func (a MandatoryAllowlist) Len() int { return len(a.values) }

// Values returns the accepted values in sorted order.
func (a MandatoryAllowlist) Values() []string { return a.values.sorted() }

// OptionalAllowlist lists accepted values for a facet where an empty list
// means the scholarship places no constraint on it.
type OptionalAllowlist struct {
	values valueSet
}

// NewOptionalAllowlist builds an allow-list from values, dropping duplicates.
func NewOptionalAllowlist(values ...string) OptionalAllowlist {
	return OptionalAllowlist{values: newValueSet(values)}
}

// Constrained reports whether any value is listed.
func (a OptionalAllowlist) Constrained() bool { return len(a.values) > 0 }

// Permits accepts anything when unconstrained; otherwise v must be set and listed.
func (a OptionalAllowlist) Permits(v *string) bool {
	if !a.Constrained() {
		return true
	}
	return v != nil && a.values.has(*v)
}

// PermitsAny accepts anything when unconstrained; otherwise at least one of vs must be listed.
func (a OptionalAllowlist) PermitsAny(vs []string) bool {
	if !a.Constrained() {
		return true
	}
	for _, v := range vs {
		if a.values.has(v) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct values.
func (a OptionalAllowlist) Len() int { return len(a.values) }

// Values returns the accepted values in sorted order.
func (a OptionalAllowlist) Values() []string { return a.values.sorted() }
