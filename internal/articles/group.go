package articles

import (
	"maps"
	"slices"

	"github.com/goliatone/go-slug"
)

// TagGroup lists the articles carrying one tag.
type TagGroup struct {
	Tag string
	// Anchor is a URL fragment safe form of Tag.
	Anchor   string
	Articles []*Article
}

// CollectTags returns the sorted union of all article tags.
func CollectTags(list []*Article) []string {
	seen := map[string]struct{}{}
	for _, article := range list {
		for _, tag := range article.Tags {
			seen[tag] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// GroupByTag groups articles under each tag in CollectTags order. Articles
// keep their input order within a group and may appear in several groups.
func GroupByTag(list []*Article) []TagGroup {
	tags := CollectTags(list)
	groups := make([]TagGroup, 0, len(tags))
	for _, tag := range tags {
		group := TagGroup{Tag: tag, Anchor: TagAnchor(tag)}
		for _, article := range list {
			if article.HasTag(tag) {
				group.Articles = append(group.Articles, article)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// TagAnchor slugifies tag for use as an element id.
func TagAnchor(tag string) string {
	anchor, err := slug.Normalize(tag)
	if err != nil || anchor == "" {
		return tag
	}
	return anchor
}
