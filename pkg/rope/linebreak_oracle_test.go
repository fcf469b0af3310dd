package rope

import (
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linebreak_oracle_test.go cross-checks computeTextInfo's line-break
// counters against an independent implementation built on dlclark/regexp2,
// which (unlike the standard library's regexp) supports the lookbehind
// needed to express "a lone CR not followed by LF" and "a lone LF not
// preceded by CR" directly as patterns, rather than as scanner code that
// might share a bug with the implementation under test.
var (
	lfOracle   = regexp2.MustCompile(`\n`, 0)
	lfcrOracle = regexp2.MustCompile(`\r\n|\r(?!\n)|(?<!\r)\n`, 0)
)

func countMatches(re *regexp2.Regexp, s string) int {
	n := 0
	m, _ := re.FindStringMatch(s)
	for m != nil {
		n++
		m, _ = re.FindNextMatch(m)
	}
	return n
}

func TestLineBreakOracle_LF(t *testing.T) {
	cases := []string{
		"",
		"a\nb\nc",
		"a\r\nb\r\nc",
		"a\rb\rc",
		"mixed\r\nand\nand\r",
	}
	for _, s := range cases {
		want := countMatches(lfOracle, s)
		got := int(computeTextInfo([]byte(s)).LineBreaksLF)
		assert.Equal(t, want, got, "LF count mismatch for %q", s)
	}
}

func TestLineBreakOracle_LFCR(t *testing.T) {
	cases := []string{
		"",
		"a\nb\nc",
		"a\r\nb\r\nc",
		"a\rb\rc",
		"mixed\r\nand\nand\r",
	}
	for _, s := range cases {
		want := countMatches(lfcrOracle, s)
		got := int(computeTextInfo([]byte(s)).LineBreaksLFCR)
		require.Equal(t, want, got, "LF/CR count mismatch for %q", s)
	}
}
