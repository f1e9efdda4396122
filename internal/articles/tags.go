package articles

import (
	"maps"
	"slices"
	"strings"
)

// TagMapper expands one raw tag into its canonical tags.
type TagMapper func(tag string) []string

// IdentityTags returns tag unchanged.
func IdentityTags(tag string) []string {
	return []string{tag}
}

// TagTable maps lowercased aliases to canonical tags.
type TagTable map[string][]string

// DefaultTagTable returns the built-in alias table.
func DefaultTagTable() TagTable {
	return TagTable{
		"go":       {"golang"},
		"js":       {"javascript"},
		"pg":       {"postgresql"},
		"postgres": {"postgresql"},
		"py":       {"python"},
		"tornado":  {"python", "tornado"},
		"ts":       {"typescript"},
	}
}

// Merge returns a copy of t with overrides applied. Override keys are
// lowercased.
func (t TagTable) Merge(overrides map[string][]string) TagTable {
	merged := make(TagTable, len(t)+len(overrides))
	maps.Copy(merged, t)
	for alias, canonical := range overrides {
		merged[strings.ToLower(alias)] = slices.Clone(canonical)
	}
	return merged
}

// Expand looks up tag case-insensitively. Unknown tags map to their
// lowercase form.
func (t TagTable) Expand(tag string) []string {
	lower := strings.ToLower(tag)
	if canonical, ok := t[lower]; ok {
		return slices.Clone(canonical)
	}
	return []string{lower}
}

// Mapper adapts the table to a TagMapper.
func (t TagTable) Mapper() TagMapper {
	return t.Expand
}

// NormalizeTags expands, dedupes and sorts raw. A nil mapper keeps tags as
// they are.
func NormalizeTags(raw []string, mapper TagMapper) []string {
	if mapper == nil {
		mapper = IdentityTags
	}

	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		for _, expanded := range mapper(tag) {
			seen[expanded] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}
