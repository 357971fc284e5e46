package types

// SortKey is a candidate's rank key: one integer per configured sort rule.
//
// Keys compare lexicographically and the smaller key is the more eligible
// candidate. Rules that must win regardless of later rules produce
// math.MinInt64 based sentinels, so the element type is fixed at int64.
type SortKey []int64

// Compare performs a lexicographic comparison of two rank keys.
//
// Ordering rules:
//   - Compare elements pairwise from the first rule on
//   - If all shared elements are equal, the shorter key sorts first
//
// Returns:
//   - int: -1 if k < o, 0 if equal, +1 if k > o
func (k SortKey) Compare(o SortKey) int {
	n := min(len(k), len(o))

	for i := range n {
		switch {
		case k[i] < o[i]:
			return -1
		case k[i] > o[i]:
			return 1
		}
	}

	switch {
	case len(k) < len(o):
		return -1
	case len(k) > len(o):
		return 1
	default:
		return 0
	}
}

// Less reports whether k sorts strictly before o.
func (k SortKey) Less(o SortKey) bool {
	return k.Compare(o) < 0
}
