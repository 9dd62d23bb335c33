package key

import "strings"

// Compare returns -1, 0 or +1 ordering a against b.
//
// Numeric keys order before Text keys. When either side is Absent the keys
// are incomparable and Compare returns 0, which every algorithm in this
// module reads as "do not move".
func Compare(a, b Key) int {
	if a.kind == Absent || b.kind == Absent {
		return 0
	}
	if a.kind != b.kind {
		// Numeric < Text
		if a.kind == Numeric {
			return -1
		}
		return 1
	}
	if a.kind == Text {
		return strings.Compare(a.text, b.text)
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	default:
		return 0
	}
}

// Greater reports a > b. It is false whenever either key is Absent.
func Greater(a, b Key) bool { return Compare(a, b) > 0 }

// Less reports a < b. It is false whenever either key is Absent.
func Less(a, b Key) bool { return Compare(a, b) < 0 }

// Comparable reports whether both keys carry a value.
func Comparable(a, b Key) bool { return a.kind != Absent && b.kind != Absent }
