package nbtpath

import "github.com/jacoelho/nbtq/internal/nbt"

// Predicate holds a template for repeated matching.
type Predicate struct {
	template nbt.Tag
}

func NewPredicate(template nbt.Tag) Predicate {
	return Predicate{template: template}
}

func (p Predicate) Matches(candidate nbt.Tag) bool {
	return Matches(p.template, candidate)
}

// Matches reports whether candidate satisfies template.
//
// Compounds match when every template key exists in the candidate and its
// value matches; extra candidate keys are ignored. Lists match when every
// template element matches at least one candidate element, in any position,
// and an empty template list matches only an empty list. Everything else
// must be equal.
func Matches(template, candidate nbt.Tag) bool {
	if sameTag(template, candidate) {
		return true
	}
	if template == nil || candidate == nil {
		return false
	}
	if template.Kind() != candidate.Kind() {
		return false
	}

	if tc, ok := asCompound(template); ok {
		if cc, ok := asCompound(candidate); ok {
			for name, want := range tc.All() {
				got, ok := cc.Get(name)
				if !ok || !Matches(want, got) {
					return false
				}
			}
			return true
		}
	}

	if tl, ok := asList(template); ok {
		if cl, ok := asList(candidate); ok {
			if tl.Len() == 0 {
				return cl.Len() == 0
			}
			for want := range tl.All() {
				if !anyMatch(want, cl) {
					return false
				}
			}
			return true
		}
	}

	return nbt.Equal(template, candidate)
}

func anyMatch(template nbt.Tag, list nbt.Sequence) bool {
	for elem := range list.All() {
		if Matches(template, elem) {
			return true
		}
	}
	return false
}

// sameTag reports identity for containers; scalars fall through to equality.
func sameTag(a, b nbt.Tag) bool {
	switch x := a.(type) {
	case *nbt.Compound:
		y, ok := b.(*nbt.Compound)
		return ok && x == y && x != nil
	case *nbt.List:
		y, ok := b.(*nbt.List)
		return ok && x == y && x != nil
	}
	return false
}
