package sixbit

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PackedNew(t *testing.T) {
	for _, input := range encoderTests {
		bytes, n, err := Encode(input)
		require.NoError(t, err)

		p, err := New(input)
		require.NoError(t, err)
		require.Equal(t, bytes, p.Bytes())
		require.Equal(t, n, p.Len())
		require.Equal(t, len(bytes), p.ByteLen())
		require.False(t, p.IsEmpty())
		require.Equal(t, input, p.String())
	}
}

func Test_PackedNewInvalid(t *testing.T) {
	p, err := New("invalid❌")
	require.ErrorIs(t, err, ErrInvalidCharacter)
	require.True(t, p.IsEmpty())

	require.Panics(t, func() {
		MustNew("lowercase")
	})
}

func Test_PackedEmpty(t *testing.T) {
	for _, p := range []Packed{{}, MustNew("")} {
		require.True(t, p.IsEmpty())
		require.Equal(t, 0, p.Len())
		require.Empty(t, p.Bytes())
		require.Equal(t, "", p.String())

		decoded, err := Decode(p.Bytes(), p.Len())
		require.NoError(t, err)
		require.Equal(t, "", decoded)
	}
	require.True(t, Packed{}.Equal(MustNew("")))
}

func Test_PackedTrailingSpaces(t *testing.T) {
	p := MustNew("TESTTEST")
	require.Equal(t, "TESTTEST", p.String())
	require.Equal(t, 6, p.ByteLen())

	p = MustNew("TEST    ")
	require.Equal(t, "TEST    ", p.String())
	require.Equal(t, 6, p.ByteLen())
	require.False(t, p.Equal(MustNew("TEST")))
}

func Test_PackedFromParts(t *testing.T) {
	bytes, n, err := Encode("HELLO WORLD")
	require.NoError(t, err)

	p, err := FromParts(bytes, n)
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD", p.String())
	require.True(t, p.Equal(MustNew("HELLO WORLD")))

	// The instance does not share memory with the caller
	bytes[0] = 0
	require.Equal(t, "HELLO WORLD", p.String())

	_, err = FromParts(bytes, n-1)
	require.ErrorIs(t, err, ErrInvalidBytesLength)

	_, err = FromParts(bytes[:3], n)
	require.ErrorIs(t, err, ErrInvalidBytesLength)

	_, err = FromParts(nil, -4)
	require.ErrorIs(t, err, ErrInvalidBytesLength)

	p, err = FromParts(nil, 0)
	require.NoError(t, err)
	require.True(t, p.IsEmpty())
}

func Test_PackedImmutable(t *testing.T) {
	p := MustNew("IMMUTABLE")
	first := p.Bytes()
	first[0] ^= 0xFF

	for i := 0; i < 3; i++ {
		require.Equal(t, "IMMUTABLE", p.String())
		require.Equal(t, 9, p.Len())
		require.Equal(t, MustNew("IMMUTABLE").Bytes(), p.Bytes())
	}
}

func Test_PackedConcurrentReads(t *testing.T) {
	p := MustNew("SHARED BETWEEN GOROUTINES")
	wg := &sync.WaitGroup{}
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.String()
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.Equal(t, "SHARED BETWEEN GOROUTINES", r)
	}
}

func Test_PackedAppend(t *testing.T) {
	tests := []struct {
		head string
		tail string
	}{
		{"", ""},
		{"", "ABC"},
		{"TEST", ""},
		{"TEST", "ING"},
		{"TEST", "TEST"},
		{"AB", "CDE"},
		{"A", "B"},
		{"ABC", "DEFGHIJ"},
	}

	for _, test := range tests {
		head := MustNew(test.head)
		joined, err := head.Append(test.tail)
		require.NoError(t, err)
		require.Truef(t, joined.Equal(MustNew(test.head+test.tail)), "%q + %q", test.head, test.tail)
		require.Equal(t, test.head, head.String())
	}

	head := MustNew("TEST")
	_, err := head.Append("ing")
	require.ErrorIs(t, err, ErrInvalidCharacter)
	require.Equal(t, "TEST", head.String())
}

func Test_PackedAppendDoesNotAlias(t *testing.T) {
	head := MustNew("ABCD")
	a, err := head.Append("E")
	require.NoError(t, err)
	b, err := head.Append("F")
	require.NoError(t, err)
	require.Equal(t, "ABCDE", a.String())
	require.Equal(t, "ABCDF", b.String())
}

func Test_PackedCompare(t *testing.T) {
	values := []Packed{
		MustNew("ZZ"),
		MustNew("B"),
		MustNew("AAA"),
		MustNew(""),
		MustNew("A"),
		MustNew("AB"),
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].Compare(values[j]) < 0
	})

	var sorted []string
	for _, v := range values {
		sorted = append(sorted, v.String())
	}
	require.Equal(t, []string{"", "A", "B", "AB", "ZZ", "AAA"}, sorted)

	require.Equal(t, 0, MustNew("SAME").Compare(MustNew("SAME")))
	require.True(t, MustNew("SAME").Equal(MustNew("SAME")))
	require.False(t, MustNew("SAME").Equal(MustNew("DIFF")))
}
