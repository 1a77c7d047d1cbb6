package host

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrBudgetExceeded is returned when a call would push the consumed compute
// units past the configured budget.
var ErrBudgetExceeded = errors.New("compute budget exceeded")

// Primitives is the primitive set wrapped by Metered.  It matches
// secpmath.Host.
type Primitives interface {
	ModExp(base, exponent, modulus []byte) ([]byte, error)
	Recover(hash [32]byte, recoveryID byte, signature [64]byte) ([64]byte, error)
}

// CostModel assigns compute units to primitive calls.  A ModExp call costs
// ModExpBase + L²/ModExpDivisor where L is the longest operand in bytes.
type CostModel struct {
	ModExpBase    uint64
	ModExpDivisor uint64
	Recover       uint64
}

// DefaultCostModel returns the cost model used by NewMetered.
func DefaultCostModel() CostModel {
	return CostModel{
		ModExpBase:    190,
		ModExpDivisor: 2,
		Recover:       25_000,
	}
}

// modExpCost returns the cost of a ModExp call with the given operands.
func (c CostModel) modExpCost(base, exponent, modulus []byte) uint64 {
	l := uint64(len(base))
	if n := uint64(len(exponent)); n > l {
		l = n
	}
	if n := uint64(len(modulus)); n > l {
		l = n
	}
	cost := c.ModExpBase
	if c.ModExpDivisor > 0 {
		cost += l * l / c.ModExpDivisor
	}
	return cost
}

// Usage is a snapshot of the calls and units charged by a Metered host.
type Usage struct {
	ModExpCalls  uint64
	RecoverCalls uint64
	Units        uint64
}

// String returns a human-readable summary.
func (u Usage) String() string {
	return fmt.Sprintf("modexp=%d recover=%d units=%d", u.ModExpCalls,
		u.RecoverCalls, u.Units)
}

// Metered counts the primitive calls made through it.  It is safe for
// concurrent use when the wrapped primitives are.
type Metered struct {
	inner  Primitives
	costs  CostModel
	budget uint64

	modExpCalls  atomic.Uint64
	recoverCalls atomic.Uint64
	units        atomic.Uint64
}

// NewMetered wraps inner with the default cost model and no budget.
func NewMetered(inner Primitives) *Metered {
	return &Metered{
		inner: inner,
		costs: DefaultCostModel(),
	}
}

// WithCostModel sets the cost model.
func (m *Metered) WithCostModel(costs CostModel) *Metered {
	m.costs = costs
	return m
}

// WithBudget limits the total units that may be charged.  Zero means no
// limit.
func (m *Metered) WithBudget(units uint64) *Metered {
	m.budget = units
	return m
}

// charge reserves cost units, failing without side effects if the budget
// would be exceeded.
func (m *Metered) charge(cost uint64) error {
	for {
		cur := m.units.Load()
		next := cur + cost
		if m.budget > 0 && next > m.budget {
			return fmt.Errorf("%w: need %d units, %d of %d remaining",
				ErrBudgetExceeded, cost, m.budget-cur, m.budget)
		}
		if m.units.CompareAndSwap(cur, next) {
			return nil
		}
	}
}

// ModExp charges for and forwards a ModExp call.
func (m *Metered) ModExp(base, exponent, modulus []byte) ([]byte, error) {
	if err := m.charge(m.costs.modExpCost(base, exponent, modulus)); err != nil {
		return nil, err
	}
	calls := m.modExpCalls.Add(1)
	log.Tracef("ModExp call %d (%d units used)", calls, m.units.Load())
	return m.inner.ModExp(base, exponent, modulus)
}

// Recover charges for and forwards a Recover call.
func (m *Metered) Recover(hash [32]byte, recoveryID byte, signature [64]byte) ([64]byte, error) {
	if err := m.charge(m.costs.Recover); err != nil {
		return [64]byte{}, err
	}
	calls := m.recoverCalls.Add(1)
	log.Tracef("Recover call %d (%d units used)", calls, m.units.Load())
	return m.inner.Recover(hash, recoveryID, signature)
}

// Usage returns the calls and units charged so far.
func (m *Metered) Usage() Usage {
	return Usage{
		ModExpCalls:  m.modExpCalls.Load(),
		RecoverCalls: m.recoverCalls.Load(),
		Units:        m.units.Load(),
	}
}

// Reset zeroes the counters.
func (m *Metered) Reset() {
	m.modExpCalls.Store(0)
	m.recoverCalls.Store(0)
	m.units.Store(0)
}
