package presenter

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/amazingnumbers/internal/registry"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "9,223,372,036,854,775,807", FormatNumber(math.MaxInt64))
}

func TestReport_Four(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, registry.New())

	require.NoError(t, p.Report(4))

	expected := "\nProperties of 4\n" +
		"        buzz: false\n" +
		"        duck: false\n" +
		" palindromic: true\n" +
		"      gapful: false\n" +
		"         spy: true\n" +
		"      square: true\n" +
		"       sunny: false\n" +
		"     jumping: true\n" +
		"       happy: false\n" +
		"         sad: true\n" +
		"        even: true\n" +
		"         odd: false\n" +
		"\n"
	assert.Equal(t, expected, out.String())

	for _, label := range []string{"buzz", "duck", "palindromic", "gapful", "spy", "square", "sunny", "jumping", "happy", "sad", "even", "odd"} {
		assert.Equal(t, 1, strings.Count(out.String(), " "+label+": "), "label %q must appear exactly once", label)
	}
}

func TestReport_FormatsLargeNumbers(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, registry.New())

	require.NoError(t, p.Report(1000000))
	assert.Contains(t, out.String(), "Properties of 1,000,000\n")
	assert.Contains(t, out.String(), "        duck: true\n")
}

func TestDescribe(t *testing.T) {
	p := New(&bytes.Buffer{}, registry.New())

	testCases := []struct {
		n        int64
		expected string
	}{
		{n: 7, expected: "7 is odd, buzz, palindromic, spy, jumping, happy"},
		{n: 10, expected: "10 is even, duck, jumping, happy"},
		{n: 1000, expected: "1,000 is even, duck, gapful, happy"},
		{n: 121, expected: "121 is odd, palindromic, gapful, square, jumping, sad"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, p.Describe(tc.n))
	}
}

func TestMessages(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, registry.New())

	require.NoError(t, p.Instructions())
	require.NoError(t, p.Prompt("Enter a request: "))
	require.NoError(t, p.Error(errors.New("The second parameter should be a natural number.")))
	require.NoError(t, p.Line(14))
	require.NoError(t, p.Goodbye())

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Welcome to Amazing Numbers!\n"))
	assert.Contains(t, text, "- enter 0 to exit.\n\nEnter a request: The second parameter")
	assert.Contains(t, text, "14 is even, buzz, sad\n")
	assert.True(t, strings.HasSuffix(text, "Goodbye!\n"))
}
