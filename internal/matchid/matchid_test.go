package matchid

import (
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns its values in order, then zeros
type fixedRand struct {
	values []int
	index  int
}

func newFixedRand(values ...int) *fixedRand {
	return &fixedRand{values: values}
}

func (f *fixedRand) Intn(n int) int {
	if f.index >= len(f.values) {
		return 0
	}
	v := f.values[f.index] % n
	f.index++
	return v
}

func TestGenerateWallClock(t *testing.T) {
	id := NewGenerator(nil, nil).Generate()
	assert.Len(t, id, Length)
	require.NoError(t, validate(id))
	assert.LessOrEqual(t, id[0], byte('7'))
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewGenerator(nil, nil).Generate()
		require.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	clock := quartz.NewMock(t)
	gen := NewGenerator(clock, nil)

	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, gen.Generate())
		clock.Advance(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		assert.Negative(t, strings.Compare(ids[i-1], ids[i]), "%s should sort before %s", ids[i-1], ids[i])
	}
}

func TestGenerateDeterministic(t *testing.T) {
	clock := quartz.NewMock(t)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	a := NewGenerator(clock, newFixedRand(values...)).Generate()
	b := NewGenerator(clock, newFixedRand(values...)).Generate()
	assert.Equal(t, a, b)
	require.NoError(t, validate(a))

	c := NewGenerator(clock, newFixedRand(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)).Generate()
	assert.NotEqual(t, a, c)
	assert.Equal(t, a[:10], c[:10], "same millisecond shares the timestamp prefix")
}

func TestEncode(t *testing.T) {
	// Only the version and variant bits set
	id := encode([16]byte{6: 0x70, 8: 0x80})
	assert.Equal(t, "0000000000e008000000000000", id)

	var max [16]byte
	for i := range max {
		max[i] = 0xff
	}
	assert.Equal(t, "7"+strings.Repeat("z", Length-1), encode(max))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"invalid character", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	require.Len(t, alphabet, 32)

	seen := make(map[rune]bool)
	for _, c := range alphabet {
		assert.False(t, seen[c], "duplicate character %c", c)
		seen[c] = true
	}
	for _, c := range "ilou" {
		assert.NotContains(t, alphabet, string(c))
	}
}
