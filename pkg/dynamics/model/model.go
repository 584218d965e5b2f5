// Package model implements the Dynamic Model DM: it collects mass and
// inertia attachments relative to the base frame, derives the symbolic
// Inertia/Coriolis/Gravity matrices via the Euler-Lagrange operator, and
// compiles numeric callables for forward and inverse dynamics.
package model

import (
	"errors"
	"fmt"

	"github.com/itohio/symdyn/pkg/core/math/symbolic"
	"github.com/itohio/symdyn/pkg/dynamics/ht"
	"github.com/itohio/symdyn/pkg/dynamics/timesubst"
)

var (
	// ErrInvalidShape is returned when an attachment is given data of
	// unsupported dimensions.
	ErrInvalidShape = errors.New("model: invalid shape")
	// ErrShapeMismatch is returned by SetDamping when b's length is not the
	// joint count n. Numeric queries given arrays of the wrong length fail
	// with the error from symbolic.Compiled.Eval, which does not wrap this
	// value.
	ErrShapeMismatch = errors.New("model: shape mismatch")
	// ErrUninitialized is returned by any dynamics query made before
	// CalculateDynamics.
	ErrUninitialized = errors.New("model: uninitialized model, call CalculateDynamics first")
	// ErrSingular is surfaced from the CAS backend when M(q) is not
	// invertible and is not identically zero.
	ErrSingular = symbolic.ErrSingular
)

// MassAttachment is a point mass located in base-frame coordinates.
type MassAttachment struct {
	M symbolic.Expr
	X [3]symbolic.Expr
}

// InertiaAttachment is a rotational inertia, expressed in the attachment
// frame, together with the rotation taking attachment-frame vectors to the
// base frame.
type InertiaAttachment struct {
	I symbolic.Matrix // 3x3, attachment frame
	R symbolic.Matrix // 3x3, attachment -> base
}

// DM is the Dynamic Model: the accumulated mass/inertia attachments plus,
// once CalculateDynamics has run, the derived symbolic matrices and their
// compiled numeric callables.
type DM struct {
	ctx *timesubst.Context

	gVal symbolic.Expr
	gDir [3]symbolic.Expr
	b    []symbolic.Expr

	masses   []MassAttachment
	inertias []InertiaAttachment

	derived *derived
}

// New creates a DM over n joints named q0..q(n-1), with the default gravity
// (9.81, (0,0,-1)) and zero damping.
func New(n int) *DM {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("q%d", i)
	}
	return NewNamed(names...)
}

// NewNamed creates a DM over joints with the given names.
func NewNamed(names ...string) *DM {
	n := len(names)
	b := make([]symbolic.Expr, n)
	for i := range b {
		b[i] = symbolic.Const(0)
	}
	return &DM{
		ctx:  timesubst.NewContext(names...),
		gVal: symbolic.Const(9.81),
		gDir: [3]symbolic.Expr{symbolic.Const(0), symbolic.Const(0), symbolic.Const(-1)},
		b:    b,
	}
}

// N returns the number of joints.
func (d *DM) N() int { return d.ctx.N() }

// Context returns the underlying time-substitution context, e.g. so a
// kinematic-model collaborator can build attachment positions directly over
// d.Q().
func (d *DM) Context() *timesubst.Context { return d.ctx }

// Q, QDot, QDDot return the joint symbol vectors.
func (d *DM) Q() []*symbolic.Symbol     { return d.ctx.Q() }
func (d *DM) QDot() []*symbolic.Symbol  { return d.ctx.QDot() }
func (d *DM) QDDot() []*symbolic.Symbol { return d.ctx.QDDot() }

// SetGravity sets the gravity magnitude and unit direction; g = gVal*gDir.
func (d *DM) SetGravity(val symbolic.Expr, dir [3]symbolic.Expr) {
	d.gVal = val
	d.gDir = dir
	d.invalidate()
}

// Gravity returns the gravity magnitude and direction.
func (d *DM) Gravity() (symbolic.Expr, [3]symbolic.Expr) { return d.gVal, d.gDir }

// SetDamping sets the joint viscous damping vector b (tau_damping = b*qdot).
func (d *DM) SetDamping(b []symbolic.Expr) error {
	if len(b) != d.N() {
		return ErrShapeMismatch
	}
	d.b = b
	d.invalidate()
	return nil
}

// Damping returns the joint damping vector.
func (d *DM) Damping() []symbolic.Expr { return d.b }

func (d *DM) invalidate() { d.derived = nil }

// AddMass attaches a point mass m at position x. If frame is supplied, x is
// interpreted in that frame and transformed to the base frame via frame
// before storing.
func (d *DM) AddMass(m symbolic.Expr, x [3]symbolic.Expr, frame ...ht.HT) {
	if len(frame) > 0 {
		x = transformPoint(frame[0], x)
	}
	d.masses = append(d.masses, MassAttachment{M: m, X: x})
	d.invalidate()
}

// AddInertia attaches a 3x3 rotational inertia I expressed in the attachment
// frame with rotation R taking attachment-frame vectors to the base frame
// (or, if frame is supplied, to frame's coordinates, with R further
// premultiplied by frame.Rot() to land in the base frame).
func (d *DM) AddInertia(I symbolic.Matrix, R symbolic.Matrix, frame ...ht.HT) error {
	if I.Rows != 3 || I.Cols != 3 || R.Rows != 3 || R.Cols != 3 {
		return ErrInvalidShape
	}
	if len(frame) > 0 {
		premul, err := symbolic.MatMul(frame[0].Rot(), R)
		if err != nil {
			return err
		}
		R = premul
	}
	d.inertias = append(d.inertias, InertiaAttachment{I: I, R: R})
	d.invalidate()
	return nil
}

// AddInertiaScalar attaches a rotational inertia given as a single scalar
// Izz, promoted to diag(0,0,Izz) — the common case of a body whose only
// significant inertia is about its local Z axis.
func (d *DM) AddInertiaScalar(izz symbolic.Expr, R symbolic.Matrix, frame ...ht.HT) error {
	I := symbolic.NewMatrix(3, 3)
	I.Set(2, 2, izz)
	return d.AddInertia(I, R, frame...)
}

// Add is the convenience form of attachment: it decomposes tForm into
// translation and rotation and forwards to AddMass (if m is non-nil) and
// AddInertia (if I is non-nil), optionally relative to frame.
func (d *DM) Add(tForm ht.HT, m *symbolic.Expr, I *symbolic.Matrix, frame ...ht.HT) error {
	if m != nil {
		d.AddMass(*m, tForm.Trans(), frame...)
	}
	if I != nil {
		if err := d.AddInertia(*I, tForm.Rot(), frame...); err != nil {
			return err
		}
	}
	return nil
}

// ClearMass removes every mass attachment.
func (d *DM) ClearMass() { d.masses = nil; d.invalidate() }

// ClearInertia removes every inertia attachment.
func (d *DM) ClearInertia() { d.inertias = nil; d.invalidate() }

// Clear removes every mass and inertia attachment.
func (d *DM) Clear() { d.masses = nil; d.inertias = nil; d.invalidate() }

func transformPoint(frame ht.HT, x [3]symbolic.Expr) [3]symbolic.Expr {
	r := frame.Rot()
	t := frame.Trans()
	col := symbolic.ColumnVector([]symbolic.Expr{x[0], x[1], x[2]})
	rx, err := symbolic.MatMul(r, col)
	if err != nil {
		panic("model: transformPoint: " + err.Error())
	}
	return [3]symbolic.Expr{
		symbolic.Add(rx.At(0, 0), t[0]),
		symbolic.Add(rx.At(1, 0), t[1]),
		symbolic.Add(rx.At(2, 0), t[2]),
	}
}
