package dh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
)

func TestTwoLinkChainToolMatchesExplicit(t *testing.T) {
	c := New([]RowSpec{
		{Kind: Revolute, A: 1},
		{Kind: Revolute, A: 1},
	})

	tool := c.Tool()
	trans := tool.Trans()

	q := c.Q()
	q0, q1 := symbolic.Var(q[0]), symbolic.Var(q[1])
	wantX := symbolic.Add(symbolic.Cos(q0), symbolic.Cos(symbolic.Add(q0, q1)))
	wantY := symbolic.Add(symbolic.Sin(q0), symbolic.Sin(symbolic.Add(q0, q1)))

	assert.True(t, symbolic.Equal(trans[0], wantX))
	assert.True(t, symbolic.Equal(trans[1], wantY))
}

func TestFrameOutOfRange(t *testing.T) {
	c := New([]RowSpec{{Kind: Revolute, A: 1}})
	_, err := c.T(5)
	assert.ErrorIs(t, err, ErrFrameOutOfRange)
}
