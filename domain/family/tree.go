package family

import "sort"

// Index is an id -> member lookup built from a full member fetch.
type Index map[string]Member

// BuildIndex builds an Index from a member list. Later duplicates of an id
// overwrite earlier ones.
func BuildIndex(members []Member) Index {
	idx := make(Index, len(members))
	for _, m := range members {
		idx[m.ID] = m
	}
	return idx
}

// Spouse resolves a member's marriedTo reference against the index.
func (idx Index) Spouse(m Member) (Member, bool) {
	if m.MarriedTo == "" {
		return Member{}, false
	}
	spouse, ok := idx[m.MarriedTo]
	return spouse, ok
}

// Roots returns the members with no known parents.
func Roots(members []Member) []Member {
	var roots []Member
	for _, m := range members {
		if m.IsRoot() {
			roots = append(roots, m)
		}
	}
	return roots
}

// CoupleChildren returns the children of a couple: every member whose mom or
// dad is either partner. spouseID may be empty for a single parent. The result
// is deduplicated by id and sorted by birthday ascending; ties keep the input
// order.
func CoupleChildren(members []Member, parentID, spouseID string) []Member {
	var children []Member
	for _, m := range members {
		if m.Mom == parentID || m.Dad == parentID ||
			(spouseID != "" && (m.Mom == spouseID || m.Dad == spouseID)) {
			children = append(children, m)
		}
	}
	children = DedupByID(children)
	SortByBirthday(children)
	return children
}

// DedupByID removes duplicate ids from a member list, keeping the first
// occurrence. A record whose mom and dad both match a queried parent would
// otherwise show up twice.
func DedupByID(members []Member) []Member {
	seen := make(map[string]bool, len(members))
	out := make([]Member, 0, len(members))
	for _, m := range members {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

// SortByBirthday orders members oldest first. Birthdays are ISO dates, so
// lexicographic order is chronological order.
func SortByBirthday(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Birthday < members[j].Birthday
	})
}
