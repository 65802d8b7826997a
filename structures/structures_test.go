package structures_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphcuts/structures"
)

type StructuresSuite struct {
	suite.Suite
}

func (s *StructuresSuite) TestBucketForest() {
	b := structures.NewBucketForest(3, 5)
	require.True(s.T(), b.IsEmpty(1))

	b.Insert(1, 2)
	b.Insert(1, 4)
	require.False(s.T(), b.IsEmpty(1))

	var popped []int
	for !b.IsEmpty(1) {
		popped = append(popped, b.PopAny(1))
	}
	require.ElementsMatch(s.T(), []int{2, 4}, popped)
	require.True(s.T(), b.IsEmpty(1))
}

func (s *StructuresSuite) TestBatchedMarkedQueue() {
	q := structures.NewBatchedMarkedQueue(5)
	q.Push(0)
	q.Push(2)
	require.True(s.T(), q.IsElement(0))
	require.False(s.T(), q.IsElement(1))
	require.Equal(s.T(), 2, q.Size())

	q.StartBatch()
	q.Push(3)
	q.Push(4)
	require.Equal(s.T(), 4, q.Size())
	require.Equal(s.T(), []int{0, 2, 3, 4}, q.AsVector())

	q.PopBackBatch()
	require.Equal(s.T(), 2, q.Size())
	require.False(s.T(), q.IsElement(3))
	require.False(s.T(), q.IsElement(4))
}

func (s *StructuresSuite) TestBatchedMarkedQueuePushDuplicatePanics() {
	q := structures.NewBatchedMarkedQueue(2)
	q.Push(0)
	require.Panics(s.T(), func() { q.Push(0) })
}

func (s *StructuresSuite) TestElementStack() {
	t := structures.NewElementStack(5)
	t.Push(1)
	t.Push(3)
	require.True(s.T(), t.IsElement(1))
	require.Equal(s.T(), 2, t.Len())

	v := t.Pop()
	require.Equal(s.T(), 3, v)
	require.False(s.T(), t.IsElement(3))
	require.Equal(s.T(), 1, t.Len())
}

func (s *StructuresSuite) TestElementStackPopEmptyPanics() {
	t := structures.NewElementStack(2)
	require.Panics(s.T(), func() { t.Pop() })
}

func TestStructuresSuite(t *testing.T) {
	suite.Run(t, new(StructuresSuite))
}
