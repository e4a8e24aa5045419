package netgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationtime/netgen"
	"github.com/katalvlaran/stationtime/traveltime"
)

func TestGenerators_TooFew(t *testing.T) {
	_, err := netgen.Line(1)
	assert.ErrorIs(t, err, netgen.ErrTooFewStations)
	_, err = netgen.Star(1)
	assert.ErrorIs(t, err, netgen.ErrTooFewStations)
	_, err = netgen.Ring(2)
	assert.ErrorIs(t, err, netgen.ErrTooFewStations)
	_, err = netgen.Grid(0, 3)
	assert.ErrorIs(t, err, netgen.ErrTooFewStations)
	_, err = netgen.BinaryTree(0)
	assert.ErrorIs(t, err, netgen.ErrTooFewStations)
	_, err = netgen.RandomTree(0, netgen.WithSeed(1))
	assert.ErrorIs(t, err, netgen.ErrTooFewStations)
}

func TestRandomTree_NeedsRNG(t *testing.T) {
	_, err := netgen.RandomTree(5)
	require.ErrorIs(t, err, netgen.ErrNeedRandSource)
	_, err = netgen.RandomQueries(5, 2)
	require.ErrorIs(t, err, netgen.ErrNeedRandSource)
}

func TestShapes(t *testing.T) {
	line, err := netgen.Line(3)
	require.NoError(t, err)
	assert.Equal(t, traveltime.BuildRequest{StationCount: 3, Edges: []traveltime.Edge{
		{A: 1, B: 2, Time: 1}, {A: 2, B: 3, Time: 1},
	}}, line)

	star, err := netgen.Star(4, netgen.WithWeightFn(netgen.ConstantWeight(3)))
	require.NoError(t, err)
	assert.Equal(t, []traveltime.Edge{
		{A: 1, B: 2, Time: 3}, {A: 1, B: 3, Time: 3}, {A: 1, B: 4, Time: 3},
	}, star.Edges)

	ring, err := netgen.Ring(3)
	require.NoError(t, err)
	assert.Len(t, ring.Edges, 3)
	assert.Equal(t, traveltime.Edge{A: 3, B: 1, Time: 1}, ring.Edges[2])

	grid, err := netgen.Grid(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, grid.StationCount)
	assert.Equal(t, []traveltime.Edge{
		{A: 1, B: 2, Time: 1}, {A: 1, B: 3, Time: 1}, {A: 2, B: 4, Time: 1}, {A: 3, B: 4, Time: 1},
	}, grid.Edges)

	tree, err := netgen.BinaryTree(5)
	require.NoError(t, err)
	assert.Equal(t, []traveltime.Edge{
		{A: 1, B: 2, Time: 1}, {A: 1, B: 3, Time: 1}, {A: 2, B: 4, Time: 1}, {A: 2, B: 5, Time: 1},
	}, tree.Edges)
}

func TestRandomTree_DeterministicAndValid(t *testing.T) {
	a, err := netgen.RandomTree(40, netgen.WithSeed(42), netgen.WithWeightFn(netgen.UniformWeight(1, 9)))
	require.NoError(t, err)
	b, err := netgen.RandomTree(40, netgen.WithSeed(42), netgen.WithWeightFn(netgen.UniformWeight(1, 9)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	require.Len(t, a.Edges, 39)
	for i, e := range a.Edges {
		assert.Equal(t, i+2, e.B)
		assert.Less(t, e.A, e.B)
		assert.GreaterOrEqual(t, e.Time, 1)
		assert.LessOrEqual(t, e.Time, 9)
	}

	_, err = traveltime.Build(a)
	require.NoError(t, err)
}

func TestWeightFns(t *testing.T) {
	assert.Panics(t, func() { netgen.ConstantWeight(0) })
	assert.Panics(t, func() { netgen.UniformWeight(0, 3) })
	assert.Panics(t, func() { netgen.UniformWeight(5, 3) })
	assert.Panics(t, func() { netgen.WithWeightFn(nil) })
	assert.Panics(t, func() { netgen.WithRand(nil) })
	assert.Equal(t, 4, netgen.UniformWeight(4, 8)(nil))
}

func TestQueries(t *testing.T) {
	assert.Nil(t, netgen.AllPairs(1))
	assert.Equal(t, []traveltime.Query{{A: 1, B: 2}, {A: 1, B: 3}, {A: 2, B: 3}}, netgen.AllPairs(3))

	qs, err := netgen.RandomQueries(6, 4, netgen.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, qs, 4)
	seen := map[traveltime.Query]bool{}
	for _, q := range qs {
		assert.Less(t, q.A, q.B)
		assert.False(t, seen[q])
		seen[q] = true
	}

	_, err = netgen.RandomQueries(3, 4, netgen.WithSeed(3))
	require.ErrorIs(t, err, netgen.ErrTooManyQueries)
}
