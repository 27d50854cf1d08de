// Package classify counts vowels, consonants, digits, and spaces in a line.
package classify

// Class is the category a single byte falls into.
type Class int

const (
	Vowel Class = iota
	Consonant
	Digit
	Space
	// Other covers everything uncounted: tabs, punctuation, non-ASCII bytes.
	Other
)

// String returns the class name (for messages and test failures).
func (c Class) String() string {
	switch c {
	case Vowel:
		return "vowel"
	case Consonant:
		return "consonant"
	case Digit:
		return "digit"
	case Space:
		return "space"
	default:
		return "other"
	}
}

// Tally holds the counts produced by one pass over a line.
// The zero value is the tally of an empty line.
type Tally struct {
	Vowels     int
	Consonants int
	Digits     int
	Spaces     int
}

// Of classifies one byte. First match wins; the checks cannot overlap,
// so the order is fixed only for reproducibility.
func Of(b byte) Class {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return Vowel
	}
	if (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
		return Consonant
	}
	if b >= '0' && b <= '9' {
		return Digit
	}
	if b == ' ' {
		return Space
	}
	return Other
}

// Count classifies every byte of line in a single forward pass.
// Other bytes increment nothing.
func Count(line string) Tally {
	var t Tally
	for i := 0; i < len(line); i++ {
		switch Of(line[i]) {
		case Vowel:
			t.Vowels++
		case Consonant:
			t.Consonants++
		case Digit:
			t.Digits++
		case Space:
			t.Spaces++
		}
	}
	return t
}
