package builder

import "strconv"

// IDFn generates an actor name from its zero-based index. It must be pure:
// the same idx always yields the same name.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns an IDFn producing prefix+decimal, e.g. "v0".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb is WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
