package classify

import (
	"testing"
)

func FuzzCount(f *testing.F) {
	f.Add("Hello World 123")
	f.Add("")
	f.Add("AEIOU")
	f.Add("!!!@@@")
	f.Add("a\tb\r\nc")
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, line string) {
		tally := Count(line)

		// Every byte lands in exactly one class.
		other := 0
		for i := 0; i < len(line); i++ {
			if Of(line[i]) == Other {
				other++
			}
		}
		sum := tally.Vowels + tally.Consonants + tally.Digits + tally.Spaces + other
		if sum != len(line) {
			t.Fatalf("tally sum %d != line length %d for %q", sum, len(line), line)
		}

		if got := Count(line); got != tally {
			t.Fatalf("Count is not idempotent for %q: %+v then %+v", line, tally, got)
		}
	})
}
