// Package classify assigns each skill reference to exactly one display
// category using an ordered, path-based rule table. Classification is a
// pure function: no I/O, no randomness, no scoring — the first matching
// rule wins, and a reference matching no rule is dropped from every
// bucket. That silent drop is a long-standing contract of the index
// format: adding a new top-level skill grouping requires adding a rule
// here, or the grouping simply does not appear in the rendered index.
package classify

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Category identifies one output bucket of the rendered index.
type Category string

const (
	CategoryCSharp       Category = "csharp"
	CategoryAspNet       Category = "aspnet"
	CategoryData         Category = "data"
	CategoryDIConfig     Category = "di-config"
	CategoryTesting      Category = "testing"
	CategoryQualityGates Category = "quality-gates"
	CategoryEcosystem    Category = "ecosystem"
	CategoryAgents       Category = "agents"
)

// DisplayOrder is the fixed rendering order of the skill categories.
// It is independent of which categories actually receive entries, so the
// renderer can emit every line even when a bucket is empty. Agents render
// as their own trailing line and are not part of this table.
var DisplayOrder = []Category{
	CategoryCSharp,
	CategoryAspNet,
	CategoryData,
	CategoryDIConfig,
	CategoryTesting,
	CategoryQualityGates,
	CategoryEcosystem,
}

// rule pairs a doublestar path pattern with the category it selects.
type rule struct {
	pattern  string
	category Category
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{"csharp/**", CategoryCSharp},
	{"aspnet/**", CategoryAspNet},
	{"blazor/**", CategoryAspNet},
	{"efcore/**", CategoryData},
	{"data/**", CategoryData},
	{"di/**", CategoryDIConfig},
	{"config/**", CategoryDIConfig},
	{"testing/**", CategoryTesting},
	{"quality/**", CategoryQualityGates},
	{"ecosystem/**", CategoryEcosystem},
}

// pinned overrides individual references ahead of the rule table. These
// two skills live under testing/ and ecosystem/ but are curated as
// quality gates; the overrides must survive any rule-table refactor.
var pinned = map[string]Category{
	"testing/crap-analysis":      CategoryQualityGates,
	"ecosystem/roslyn-analyzers": CategoryQualityGates,
}

// Classify returns the category for a skill reference. The second return
// is false when no pin and no rule matches, in which case the reference
// belongs to no bucket at all.
func Classify(ref string) (Category, bool) {
	if cat, ok := pinned[ref]; ok {
		return cat, true
	}
	for _, r := range rules {
		if ok, err := doublestar.Match(r.pattern, ref); err == nil && ok {
			return r.category, true
		}
	}
	return "", false
}

// Buckets groups references by category in a single linear pass,
// preserving input order within each bucket. Unmatched references are
// dropped. The map holds only buckets that received at least one entry;
// callers iterate DisplayOrder to render the full fixed shape.
func Buckets(refs []string) map[Category][]string {
	buckets := make(map[Category][]string)
	for _, ref := range refs {
		cat, ok := Classify(ref)
		if !ok {
			continue
		}
		buckets[cat] = append(buckets[cat], ref)
	}
	return buckets
}
