package circuit

import (
	"testing"

	"github.com/quarclab/quarc/recording"
	"github.com/stretchr/testify/require"
)

func TestCopyOnWriteRecorded(t *testing.T) {
	assert := require.New(t)

	session := recording.NewSession()
	session.SetLevel(cowRecorder, recording.Debug)
	stop := session.Start()
	defer stop()

	m, err := NewCircuit(2, 0, H(0))
	assert.NoError(err)
	_ = m.Freeze()
	assert.NoError(m.AddXGate(1)) // triggers the copy

	groups := session.History(cowRecorder)
	assert.Len(groups, 1)
	assert.Equal("nbGates", groups[0].Entries[0].Key)
	assert.Equal(1, groups[0].Entries[0].Value)

	// owned mutation does not record another copy
	assert.NoError(m.AddYGate(0))
	assert.Len(session.History(cowRecorder), 1)
}

func TestDepthRecorded(t *testing.T) {
	assert := require.New(t)

	session := recording.NewSession()
	session.SetLevel(depthRecorder, recording.Debug)
	stop := session.Start()
	defer stop()

	c, err := NewCircuit(2, 0, H(0), H(0), CNOT(0, 1))
	assert.NoError(err)
	assert.Equal(3, c.Depth())

	groups := session.History(depthRecorder)
	assert.Len(groups, 1)
	entries := groups[0].Entries
	assert.Len(entries, 2)
	assert.Equal("nbGates", entries[0].Key)
	assert.Equal(3, entries[0].Value)
	assert.Equal("depth", entries[1].Key)
	assert.Equal(3, entries[1].Value)
}
