package fnmatch

// Segment is one element of a parsed pattern. It is one of Literal, AnyChar,
// AnyRun, Recursive or Class.
type Segment interface {
	isSegment()
}

// Literal matches its text exactly, one character at a time.
type Literal struct {
	Text string
}

// AnyChar matches exactly one character (?).
type AnyChar struct{}

// AnyRun matches zero or more characters (*).
type AnyRun struct{}

// Recursive matches zero or more whole path components (**).
type Recursive struct {
	// Dir is set when the ** was followed by a separator, which the segment
	// then absorbs: it matches the empty string or any string ending in '/'.
	// Without it, the ** ended the pattern and matches any remainder.
	Dir bool
}

func (Literal) isSegment()   {}
func (AnyChar) isSegment()   {}
func (AnyRun) isSegment()    {}
func (Recursive) isSegment() {}
func (Class) isSegment()     {}

// isStar reports whether seg matches a variable number of characters.
func isStar(seg Segment) bool {
	switch seg.(type) {
	case AnyRun, Recursive:
		return true
	default:
		return false
	}
}
