package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParametricCircuitBind(t *testing.T) {
	assert := require.New(t)

	pc, err := NewParametricCircuit(2, 0)
	assert.NoError(err)

	assert.NoError(pc.Add(H(0)))
	p0, err := pc.AddParametricRXGate(0)
	assert.NoError(err)
	assert.NoError(pc.Add(CNOT(0, 1)))
	p1, err := pc.AddParametricRZGate(1)
	assert.NoError(err)

	assert.Equal(0, p0.Index())
	assert.Equal(1, p1.Index())
	assert.Equal(2, pc.ParameterCount())
	assert.Equal(4, pc.GateCount())

	bound, err := pc.Bind([]float64{0.3, 0.7})
	assert.NoError(err)

	want, err := NewCircuit(2, 0, H(0), RX(0, 0.3), CNOT(0, 1), RZ(1, 0.7))
	assert.NoError(err)
	assert.True(bound.Equal(want))
}

func TestParametricCircuitBindLengthMismatch(t *testing.T) {
	assert := require.New(t)

	pc, err := NewParametricCircuit(1, 0)
	assert.NoError(err)
	_, err = pc.AddParametricRYGate(0)
	assert.NoError(err)

	_, err = pc.Bind(nil)
	assert.ErrorIs(err, ErrLengthMismatch)
	_, err = pc.Bind([]float64{0.1, 0.2})
	assert.ErrorIs(err, ErrLengthMismatch)
}

func TestParametricCircuitReusable(t *testing.T) {
	assert := require.New(t)

	pc, err := NewParametricCircuit(1, 0)
	assert.NoError(err)
	_, err = pc.AddParametricRXGate(0)
	assert.NoError(err)

	b1, err := pc.Bind([]float64{math.Pi / 2})
	assert.NoError(err)
	b2, err := pc.Bind([]float64{math.Pi / 4})
	assert.NoError(err)

	assert.True(b1.Gates()[0].Equal(RX(0, math.Pi/2)))
	assert.True(b2.Gates()[0].Equal(RX(0, math.Pi/4)))
	assert.Equal(1, pc.ParameterCount(), "binding must leave the parametric circuit reusable")
}

func TestParametricPauliRotation(t *testing.T) {
	assert := require.New(t)

	pc, err := NewParametricCircuit(3, 0)
	assert.NoError(err)
	_, err = pc.AddParametricPauliRotationGate([]int{0, 1, 2}, []PauliID{PauliX, PauliY, PauliZ})
	assert.NoError(err)

	bound, err := pc.Bind([]float64{0.9})
	assert.NoError(err)
	want, err := PauliRotation([]int{0, 1, 2}, []PauliID{PauliX, PauliY, PauliZ}, 0.9)
	assert.NoError(err)
	assert.True(bound.Gates()[0].Equal(want))

	// shape errors surface at add time, same as ordinary circuits
	_, err = pc.AddParametricPauliRotationGate([]int{0, 1}, []PauliID{PauliX})
	assert.ErrorIs(err, ErrLengthMismatch)
	_, err = pc.AddParametricRXGate(5)
	assert.ErrorIs(err, ErrIndexOutOfRange)
	assert.Equal(1, pc.ParameterCount())
}
