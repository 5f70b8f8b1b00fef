package circuit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFreezeThenMutate(t *testing.T) {
	assert := require.New(t)

	m, err := NewCircuit(2, 0, H(0))
	assert.NoError(err)

	frozen := m.Freeze()
	assert.Equal(1, frozen.GateCount())

	// the builder keeps working; the snapshot must not see the new gate
	assert.NoError(m.Add(CNOT(0, 1)))
	assert.Equal(2, m.GateCount())
	assert.Equal(1, frozen.GateCount())
	assert.Equal(GateH, frozen.Gates()[0].Name)
}

func TestFreezeShareNoCopy(t *testing.T) {
	assert := require.New(t)

	m, err := NewCircuit(2, 0, H(0), CNOT(0, 1))
	assert.NoError(err)

	f1 := m.Freeze()
	f2 := m.Freeze()
	// repeated freezes without intervening mutation share the same storage
	assert.Same(f1.st, f2.st)
	assert.Same(m.st, f1.st)

	// freezing an immutable circuit is the identity
	assert.Same(f1, f1.Freeze())
}

func TestCopyOnWriteIsolatesSnapshots(t *testing.T) {
	assert := require.New(t)

	m, err := NewCircuit(3, 0)
	assert.NoError(err)
	assert.NoError(m.AddHGate(0))

	f1 := m.Freeze()
	assert.NoError(m.AddXGate(1)) // triggers the copy
	f2 := m.Freeze()
	assert.NoError(m.AddYGate(2))

	assert.Equal(1, f1.GateCount())
	assert.Equal(2, f2.GateCount())
	assert.Equal(3, m.GateCount())
	assert.NotSame(f1.st, f2.st)
}

func TestCopyOnWriteAllMutations(t *testing.T) {
	// every mutating operation must honor the copy-on-write contract
	cases := []struct {
		name   string
		mutate func(t *testing.T, c *Circuit)
	}{
		{"Add", func(t *testing.T, c *Circuit) { require.NoError(t, c.Add(X(0))) }},
		{"AddAt", func(t *testing.T, c *Circuit) { require.NoError(t, c.AddAt(X(0), 0)) }},
		{"Extend", func(t *testing.T, c *Circuit) { require.NoError(t, c.Extend([]Gate{X(0), Y(1)})) }},
		{"Measure", func(t *testing.T, c *Circuit) { require.NoError(t, c.MeasureOne(0, 0)) }},
		{"Convenience", func(t *testing.T, c *Circuit) { require.NoError(t, c.AddSWAPGate(0, 1)) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert := require.New(t)
			m, err := NewCircuit(2, 1, H(0))
			assert.NoError(err)
			frozen := m.Freeze()

			tc.mutate(t, m)
			assert.Equal(1, frozen.GateCount())
			assert.Greater(m.GateCount(), frozen.GateCount())
		})
	}
}

func TestMutableCopyIndependence(t *testing.T) {
	assert := require.New(t)

	m, err := NewCircuit(3, 0, Toffoli(0, 1, 2))
	assert.NoError(err)
	frozen := m.Freeze()

	c1 := frozen.MutableCopy()
	c2 := frozen.MutableCopy()

	assert.True(c1.Equal(frozen))
	assert.True(c2.Equal(frozen))
	assert.True(c1.Equal(c2))

	// the copies are independently mutable
	assert.NoError(c1.AddXGate(0))
	assert.NoError(c2.AddYGate(1))
	assert.Equal(1, frozen.GateCount())
	assert.False(c1.Equal(c2))
	assert.False(c1.Equal(frozen))

	if diff := cmp.Diff([]Gate{Toffoli(0, 1, 2)}, frozen.Gates()); diff != "" {
		t.Fatalf("snapshot changed (-want +got):\n%s", diff)
	}
}

func TestMutableCopyOfBuilder(t *testing.T) {
	assert := require.New(t)

	m, err := NewCircuit(2, 0, H(0))
	assert.NoError(err)

	cp := m.MutableCopy()
	assert.True(cp.Equal(m))

	assert.NoError(m.AddXGate(1))
	assert.NoError(cp.AddZGate(0))
	assert.Equal(GateX, m.Gates()[1].Name)
	assert.Equal(GateZ, cp.Gates()[1].Name)
}

func TestImmutableCombine(t *testing.T) {
	assert := require.New(t)

	m, err := NewCircuit(2, 0, H(0))
	assert.NoError(err)
	frozen := m.Freeze()

	out, err := frozen.Combine([]Gate{CNOT(0, 1)})
	assert.NoError(err)
	assert.Equal(1, frozen.GateCount())
	assert.Equal(2, out.GateCount())

	// the combined circuit is a fresh mutable circuit
	assert.NoError(out.AddXGate(0))
	assert.Equal(1, frozen.GateCount())
}
