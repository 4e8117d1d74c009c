package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/loader"
)

const triangleCSV = `# triangle
A,B,5
B,C,5
A,C,11
`

func TestParse_Basic(t *testing.T) {
	recs, err := loader.Parse(strings.NewReader(triangleCSV))
	require.NoError(t, err)
	assert.Equal(t, []loader.Record{
		{From: "A", To: "B", Weight: 5, Line: 2},
		{From: "B", To: "C", Weight: 5, Line: 3},
		{From: "A", To: "C", Weight: 11, Line: 4},
	}, recs)
}

func TestParse_Options(t *testing.T) {
	in := "from;to;w\n  X ; Y ; 1.5\n\n% note\nY;Z;-2\n"
	recs, err := loader.Parse(strings.NewReader(in),
		loader.WithComma(';'),
		loader.WithComment('%'),
		loader.WithHeader(true),
	)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, loader.Record{From: "X", To: "Y", Weight: 1.5, Line: 2}, recs[0])
	assert.Equal(t, -2.0, recs[1].Weight)

	// Without trimming, the padded labels survive and the weight does not parse.
	_, err = loader.Parse(strings.NewReader("X , Y,1\n"), loader.WithTrimSpace(false))
	require.NoError(t, err)
	_, err = loader.Parse(strings.NewReader("X,Y,1 \n"), loader.WithTrimSpace(false))
	assert.ErrorIs(t, err, loader.ErrBadWeight)
}

func TestParse_Isolated(t *testing.T) {
	in := "A,B,1\nLonely\n"

	_, err := loader.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, loader.ErrMalformedRecord)

	recs, err := loader.Parse(strings.NewReader(in), loader.WithIsolated(true))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.True(t, recs[1].Isolated())
	assert.Equal(t, "Lonely", recs[1].From)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
		want error
	}{
		{"too few fields", "A,B,1\nA,B\n", 2, loader.ErrMalformedRecord},
		{"too many fields", "A,B,1,2\n", 1, loader.ErrMalformedRecord},
		{"empty label", "A,B,1\n# c\n,B,1\n", 3, loader.ErrMalformedRecord},
		{"bad weight", "A,B,1\nA,C,heavy\n", 2, loader.ErrBadWeight},
		{"nan weight", "A,B,NaN\n", 1, loader.ErrBadWeight},
		{"broken quote", "A,B,1\n\"A,B,1\n", 2, loader.ErrMalformedRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := loader.Parse(strings.NewReader(tc.in))
			assert.Nil(t, recs)
			require.ErrorIs(t, err, tc.want)

			var pe *loader.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestParse_OptionViolation(t *testing.T) {
	for _, opts := range [][]loader.Option{
		{loader.WithComma('#')},
		{loader.WithComma('\n')},
		{loader.WithComma(0)},
		{loader.WithComment('"')},
	} {
		_, err := loader.Parse(strings.NewReader("A,B,1\n"), opts...)
		assert.ErrorIs(t, err, loader.ErrOptionViolation)
	}
}

func TestParse_NonFiniteRejected(t *testing.T) {
	for _, w := range []string{"inf", "+Inf", "-Inf", "NaN", "1e400"} {
		_, err := loader.Parse(strings.NewReader("A,B,1\nA,B," + w + "\n"))
		assert.ErrorIs(t, err, loader.ErrBadWeight, w)

		var pe *loader.ParseError
		require.True(t, errors.As(err, &pe), w)
		assert.Equal(t, 2, pe.Line, w)
	}
}

// TestLoad_RoundTrip checks that every pair keeps the weight of its last record.
func TestLoad_RoundTrip(t *testing.T) {
	in := "A,B,1\nB,C,2\nC,A,3\nB,A,4\nD,D,0\n"
	g, err := loader.Load(strings.NewReader(in))
	require.NoError(t, err)

	want := map[[2]string]float64{
		{"A", "B"}: 4, {"B", "C"}: 2, {"C", "A"}: 3, {"D", "D"}: 0,
	}
	for pair, w := range want {
		got, ok := g.EdgeWeight(pair[0], pair[1])
		require.True(t, ok, "%v", pair)
		assert.Equal(t, w, got, "%v", pair)
		got, ok = g.EdgeWeight(pair[1], pair[0])
		require.True(t, ok, "%v", pair)
		assert.Equal(t, w, got, "%v", pair)
	}
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
}

func TestLoad_IsolatedNodes(t *testing.T) {
	g, err := loader.Load(strings.NewReader("A,B,1\nZ\n"), loader.WithIsolated(true))
	require.NoError(t, err)
	assert.True(t, g.HasNode("Z"))
	assert.Empty(t, g.Neighbors("Z"))
	assert.Equal(t, 1, g.Stats().Isolated)
}

func TestLoad_FailsFast(t *testing.T) {
	g, err := loader.Load(strings.NewReader("A,B,1\nA,B,x\nC,D,1\n"))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, loader.ErrBadWeight)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(path, []byte(triangleCSV), 0o600))

	g, err := loader.LoadFile(path)
	require.NoError(t, err)
	w, ok := g.EdgeWeight("C", "A")
	assert.True(t, ok)
	assert.Equal(t, 11.0, w)

	_, err = loader.LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("A,B\n"), 0o600))
	_, err = loader.LoadFile(bad)
	assert.ErrorIs(t, err, loader.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "bad.csv")
}

func TestBuild(t *testing.T) {
	g, err := loader.Build([]loader.Record{
		{From: "A", To: "B", Weight: 2, Line: 1},
		{From: "C", Line: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())

	_, err = loader.Build([]loader.Record{{From: "", To: "B", Weight: 1, Line: 7}})
	var pe *loader.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 7, pe.Line)
	assert.ErrorIs(t, err, core.ErrEmptyLabel)
}

func TestWrite_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InsertEdge("A", "B", 2))
	require.NoError(t, g.InsertEdge("B", "B", 0.1))
	require.NoError(t, g.InsertEdge("C", "A", -1.5))
	require.NoError(t, g.InsertEdge("A", "B", 3)) // last weight wins
	require.NoError(t, g.AddNode("Lonely"))

	var sb strings.Builder
	require.NoError(t, loader.Write(&sb, g, loader.WithIsolated(true)))
	assert.Equal(t, "A,B,3\nA,C,-1.5\nB,B,0.1\nLonely\n", sb.String())

	back, err := loader.Load(strings.NewReader(sb.String()), loader.WithIsolated(true))
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), back.Nodes())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestWrite_Options(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InsertEdge("x y", "z", 1))

	var sb strings.Builder
	require.NoError(t, loader.Write(&sb, g, loader.WithComma(';'), loader.WithHeader(true)))
	assert.Equal(t, "from;to;weight\nx y;z;1\n", sb.String())

	require.NoError(t, g.AddNode("alone"))
	err := loader.Write(&sb, g)
	assert.ErrorIs(t, err, loader.ErrOptionViolation)

	err = loader.Write(&sb, g, loader.WithComma('\n'))
	assert.ErrorIs(t, err, loader.ErrOptionViolation)
	assert.ErrorIs(t, loader.Write(&sb, nil), loader.ErrOptionViolation)
}
