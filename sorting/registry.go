package sorting

import "fmt"

// names lists the built-in algorithms in the order reports use.
var names = []string{NameBubble, NameInsertion, NameMerge, NameQuick}

// Names returns the built-in algorithm names in registry order.
// The returned slice is a copy.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Lookup returns the Sorter registered under name.
func Lookup(name string) (Sorter, error) {
	switch name {
	case NameBubble:
		return Bubble, nil
	case NameInsertion:
		return Insertion, nil
	case NameMerge:
		return Merge, nil
	case NameQuick:
		return Quick, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
