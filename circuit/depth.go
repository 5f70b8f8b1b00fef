package circuit

import "github.com/quarclab/quarc/recording"

var depthRecorder = recording.Recordable("quarc/circuit", "depth")

// depth is the length of the longest wire-dependency chain: the minimum number
// of sequential layers needed if gates on disjoint wires run in parallel.
//
// Wires are the qubit indices followed by the classical bit indices. Each
// gate's layer is one past the highest layer already assigned on any wire it
// touches; a measurement touches both its qubit wires and its classical wires.
func (s *storage) depth() int {
	if len(s.gates) == 0 {
		return 0
	}

	layers := make([]int, s.nbQubits+s.nbCbits)
	maxLayer := 0
	for _, g := range s.gates {
		layer := 0
		for _, q := range g.QubitIndices() {
			if layers[q] > layer {
				layer = layers[q]
			}
		}
		for _, c := range g.ClassicalIndices {
			if w := s.nbQubits + c; layers[w] > layer {
				layer = layers[w]
			}
		}
		layer++
		for _, q := range g.QubitIndices() {
			layers[q] = layer
		}
		for _, c := range g.ClassicalIndices {
			layers[s.nbQubits+c] = layer
		}
		if layer > maxLayer {
			maxLayer = layer
		}
	}

	if depthRecorder.Enabled(recording.Debug) {
		stop := depthRecorder.Start()
		depthRecorder.Debug("nbGates", len(s.gates))
		depthRecorder.Debug("depth", maxLayer)
		stop()
	}
	return maxLayer
}
