// Package dh is the symbolic counterpart of a Denavit-Hartenberg kinematic
// chain: given a parameter table, it builds one joint symbol per row and
// exposes T(0,i) for every frame, for use as a kinematic-model collaborator
// feeding mass/inertia attachments into a Dynamic Model.
package dh

import (
	"errors"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
	"github.com/itohio/symdyn/pkg/dynamics/ht"
)

// ErrFrameOutOfRange is returned by T when frame is outside [0, N].
var ErrFrameOutOfRange = errors.New("dh: frame out of range")

// RowKind distinguishes which DH parameter a joint actuates.
type RowKind int

const (
	// Revolute joints vary Theta; Alpha, A and D are fixed link parameters.
	Revolute RowKind = iota
	// Prismatic joints vary D; Theta, Alpha and A are fixed link parameters.
	Prismatic
)

// RowSpec is one link's fixed DH parameters plus which one is driven by the
// joint variable.
type RowSpec struct {
	Kind  RowKind
	Theta float64 // ignored (replaced by q) if Kind == Revolute
	D     float64 // ignored (replaced by q) if Kind == Prismatic
	A     float64
	Alpha float64
}

// Chain is a symbolic DH kinematic chain: one joint symbol per row, the
// per-row transforms, and the cumulative T(0,i) frames.
type Chain struct {
	q     []*symbolic.Symbol
	rows  []ht.DHRow
	chain []ht.HT
}

// New builds a Chain from specs, one fresh joint symbol "q0".."q(n-1)" per
// row.
func New(specs []RowSpec) *Chain {
	return NewFromSymbols(symbolic.NewVector("q", len(specs)), specs)
}

// NewFromSymbols builds a Chain from specs over an existing joint symbol
// vector q (len(q) == len(specs)) — the form to use when the chain's
// attachments must be expressed over a Dynamic Model's own joint symbols
// (DM.Q()), so that differentiating the model's Lagrangian actually sees
// these positions depend on q.
func NewFromSymbols(q []*symbolic.Symbol, specs []RowSpec) *Chain {
	rows := make([]ht.DHRow, len(specs))
	for i, s := range specs {
		theta := symbolic.Const(s.Theta)
		d := symbolic.Const(s.D)
		switch s.Kind {
		case Revolute:
			theta = symbolic.Var(q[i])
		case Prismatic:
			d = symbolic.Var(q[i])
		}
		rows[i] = ht.DHRow{
			Theta: theta,
			D:     d,
			A:     symbolic.Const(s.A),
			Alpha: symbolic.Const(s.Alpha),
		}
	}
	return &Chain{q: q, rows: rows, chain: ht.FromDHChain(rows)}
}

// N returns the number of joints.
func (c *Chain) N() int { return len(c.q) }

// Q returns the joint symbol vector, in chain order.
func (c *Chain) Q() []*symbolic.Symbol { return c.q }

// T returns the transform from the base frame to frame (0 <= frame <= N),
// T(0,0) being Identity.
func (c *Chain) T(frame int) (ht.HT, error) {
	if frame < 0 || frame >= len(c.chain) {
		return ht.HT{}, ErrFrameOutOfRange
	}
	return c.chain[frame], nil
}

// Tool returns T(0, N), the chain's end-effector transform.
func (c *Chain) Tool() ht.HT {
	return c.chain[len(c.chain)-1]
}

// Rows returns the underlying per-link DH rows.
func (c *Chain) Rows() []ht.DHRow { return c.rows }
