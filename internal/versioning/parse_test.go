package versioning

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Tuple
		ok       bool
	}{
		{"major minor", "sample_model_v1.2.tsv", Tuple{1, 2}, true},
		{"single component", "samples_v7.tsv", Tuple{7}, true},
		{"many components", "x_v1.2.3.4.5.tsv", Tuple{1, 2, 3, 4, 5}, true},
		{"leading zeros", "x_v01.009.tsv", Tuple{1, 9}, true},
		{"last version wins", "x_v1_v2.3.tsv", Tuple{2, 3}, true},
		{"no version", "b.txt", nil, false},
		{"wrong extension", "samples_v1.0.csv", nil, false},
		{"trailing text", "samples_v1.0-draft.tsv", nil, false},
		{"empty component", "samples_v1..2.tsv", nil, false},
		{"trailing dot", "samples_v1..tsv", nil, false},
		{"letters", "samples_vX.tsv", nil, false},
		{"no underscore", "samplesv1.tsv", nil, false},
		{"overflow", "samples_v99999999999999999999999.tsv", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.filename, ".tsv")
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParse_DefaultExtension(t *testing.T) {
	got, ok := Parse("a_v3.1.tsv", "")
	require.True(t, ok)
	require.Equal(t, Tuple{3, 1}, got)

	got, ok = Parse("a_v3.1.csv", ".csv")
	require.True(t, ok)
	require.Equal(t, Tuple{3, 1}, got)
}

func TestCompare(t *testing.T) {
	require.Equal(t, 1, Compare(Tuple{1, 10}, Tuple{1, 9}))
	require.Equal(t, 1, Compare(Tuple{2}, Tuple{1, 9}))
	require.Equal(t, -1, Compare(Tuple{1, 2}, Tuple{1, 2, 0}))
	require.Equal(t, 0, Compare(Tuple{3, 0}, Tuple{3, 0}))
	require.True(t, Less(Tuple{0, 9}, Tuple{1}))
}

func TestCompare_SortsNumerically(t *testing.T) {
	versions := []Tuple{{1, 10}, {1, 2}, {1, 9}, {2}, {1, 2, 0}}
	sort.Slice(versions, func(i, j int) bool { return Less(versions[i], versions[j]) })
	require.Equal(t, []Tuple{{1, 2}, {1, 2, 0}, {1, 9}, {1, 10}, {2}}, versions)
}

func TestTupleString(t *testing.T) {
	require.Equal(t, "1.10", Tuple{1, 10}.String())
	require.Equal(t, "4", Tuple{4}.String())
}

func TestMatcher_ReusedAcrossNames(t *testing.T) {
	m := NewMatcher("")
	v, ok := m.Parse("a_v1.10.tsv")
	require.True(t, ok)
	require.Equal(t, Tuple{1, 10}, v)
	_, ok = m.Parse("a_v1.10.csv")
	require.False(t, ok)

	csv := NewMatcher(".csv")
	v, ok = csv.Parse("a_v2.csv")
	require.True(t, ok)
	require.Equal(t, Tuple{2}, v)
}
