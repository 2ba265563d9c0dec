package dsl

import (
	"errors"
	"fmt"
	"math"

	"github.com/ByLCY/twips/binding"
	"github.com/ByLCY/twips/twips"
	"github.com/ByLCY/twips/units"
)

// Evaluation errors.
var (
	ErrUnbound   = errors.New("dsl: unbound reference")
	ErrDimension = errors.New("dsl: dimension mismatch")
	ErrDivByZero = errors.New("dsl: division by zero")
	ErrNotFinite = errors.New("dsl: result is not finite")
)

// operand is either a length or a dimensionless scalar. Bare numbers stay
// scalars until they meet a length in a sum, where they count as twips.
type operand struct {
	v      twips.Value
	scalar float64
	isLen  bool
}

func lengthOperand(l units.Length) operand {
	if l.Unit == units.UnitNone {
		return operand{scalar: l.Value}
	}
	return operand{v: twips.FromLength(l), isLen: true}
}

func (o operand) value() twips.Value {
	if o.isLen {
		return o.v
	}
	return twips.FromLength(units.Twips(o.scalar))
}

// integral reports whether a scalar operand is a whole number of twips.
func (o operand) integral() (int64, bool) {
	if o.isLen || o.scalar != math.Trunc(o.scalar) || math.Abs(o.scalar) > 1<<53 {
		return 0, false
	}
	return int64(o.scalar), true
}

// Eval parses src and evaluates it against data (JSON-decoded, may be nil).
func Eval(src string, data any) (twips.Value, error) {
	expr, err := ParseString(src)
	if err != nil {
		return twips.Value{}, fmt.Errorf("parse %q: %w", src, err)
	}
	return expr.Eval(data)
}

// Eval evaluates the expression. References are resolved in data with
// binding.LengthAt. A dimensionless result is read as twips.
func (e *Expr) Eval(data any) (twips.Value, error) {
	o, err := e.eval(data)
	if err != nil {
		return twips.Value{}, err
	}
	v := o.value()
	if f := v.Length().Value; math.IsNaN(f) || math.IsInf(f, 0) {
		return twips.Value{}, ErrNotFinite
	}
	return v, nil
}

func (e *Expr) eval(data any) (operand, error) {
	acc, err := e.Head.eval(data)
	if err != nil {
		return operand{}, err
	}
	for _, op := range e.Tail {
		rhs, err := op.Term.eval(data)
		if err != nil {
			return operand{}, err
		}
		acc = sum(acc, rhs, op.Op == "-")
	}
	return acc, nil
}

func sum(a, b operand, sub bool) operand {
	switch {
	case !a.isLen && !b.isLen:
		if sub {
			return operand{scalar: a.scalar - b.scalar}
		}
		return operand{scalar: a.scalar + b.scalar}
	case a.isLen && !b.isLen:
		if n, ok := b.integral(); ok {
			if sub {
				return operand{v: a.v.Minus(n), isLen: true}
			}
			return operand{v: a.v.Plus(n), isLen: true}
		}
	case !a.isLen && b.isLen:
		if n, ok := a.integral(); ok {
			if sub {
				return operand{v: twips.IntSub(n, b.v), isLen: true}
			}
			return operand{v: twips.IntAdd(n, b.v), isLen: true}
		}
	}
	if sub {
		return operand{v: a.value().Sub(b.value()), isLen: true}
	}
	return operand{v: a.value().Add(b.value()), isLen: true}
}

func (t *Term) eval(data any) (operand, error) {
	acc, err := t.Head.eval(data)
	if err != nil {
		return operand{}, err
	}
	for _, op := range t.Tail {
		rhs, err := op.Unary.eval(data)
		if err != nil {
			return operand{}, err
		}
		if op.Op == "*" {
			acc, err = product(acc, rhs)
		} else {
			acc, err = quotient(acc, rhs)
		}
		if err != nil {
			return operand{}, err
		}
	}
	return acc, nil
}

func product(a, b operand) (operand, error) {
	switch {
	case a.isLen && b.isLen:
		return operand{}, fmt.Errorf("%w: length * length", ErrDimension)
	case a.isLen:
		return operand{v: twips.Mul(a.v, b.scalar), isLen: true}, nil
	case b.isLen:
		return operand{v: twips.Mul(b.v, a.scalar), isLen: true}, nil
	}
	return operand{scalar: a.scalar * b.scalar}, nil
}

// quotient divides a by b. Length over length yields a ratio.
func quotient(a, b operand) (operand, error) {
	switch {
	case a.isLen && b.isLen:
		den := b.v.Length().To(units.Twip)
		if den == 0 {
			return operand{}, ErrDivByZero
		}
		return operand{scalar: a.v.Length().To(units.Twip) / den}, nil
	case b.isLen:
		return operand{}, fmt.Errorf("%w: number / length", ErrDimension)
	case b.scalar == 0:
		return operand{}, ErrDivByZero
	case a.isLen:
		return operand{v: twips.Div(a.v, b.scalar), isLen: true}, nil
	}
	return operand{scalar: a.scalar / b.scalar}, nil
}

func (u *Unary) eval(data any) (operand, error) {
	if u.Neg != nil {
		o, err := u.Neg.eval(data)
		if err != nil {
			return operand{}, err
		}
		if o.isLen {
			return operand{v: o.v.Neg(), isLen: true}, nil
		}
		return operand{scalar: -o.scalar}, nil
	}
	return u.Primary.eval(data)
}

func (p *Primary) eval(data any) (operand, error) {
	switch {
	case p.Literal != nil:
		return lengthOperand(units.Length(*p.Literal)), nil
	case p.Ref != nil:
		l, err := binding.LengthAt(data, *p.Ref)
		if errors.Is(err, binding.ErrNotFound) {
			return operand{}, fmt.Errorf("%w %q at %s", ErrUnbound, *p.Ref, p.Pos)
		}
		if err != nil {
			return operand{}, fmt.Errorf("%s: %w", p.Pos, err)
		}
		return lengthOperand(l), nil
	case p.Sub != nil:
		return p.Sub.eval(data)
	}
	return operand{}, fmt.Errorf("empty operand at %s", p.Pos)
}
