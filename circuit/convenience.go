package circuit

// Per-gate convenience methods, one per catalog entry. Each is sugar over
// [Circuit.Add] with the corresponding factory and carries the same validation
// contract: on failure the circuit is unchanged.

func (c *Circuit) AddIdentityGate(q int) error { return c.Add(Identity(q)) }
func (c *Circuit) AddXGate(q int) error        { return c.Add(X(q)) }
func (c *Circuit) AddYGate(q int) error        { return c.Add(Y(q)) }
func (c *Circuit) AddZGate(q int) error        { return c.Add(Z(q)) }
func (c *Circuit) AddHGate(q int) error        { return c.Add(H(q)) }
func (c *Circuit) AddSGate(q int) error        { return c.Add(S(q)) }
func (c *Circuit) AddSdagGate(q int) error     { return c.Add(Sdag(q)) }
func (c *Circuit) AddSqrtXGate(q int) error    { return c.Add(SqrtX(q)) }
func (c *Circuit) AddSqrtXdagGate(q int) error { return c.Add(SqrtXdag(q)) }
func (c *Circuit) AddSqrtYGate(q int) error    { return c.Add(SqrtY(q)) }
func (c *Circuit) AddSqrtYdagGate(q int) error { return c.Add(SqrtYdag(q)) }
func (c *Circuit) AddTGate(q int) error        { return c.Add(T(q)) }
func (c *Circuit) AddTdagGate(q int) error     { return c.Add(Tdag(q)) }

func (c *Circuit) AddU1Gate(q int, lambda float64) error { return c.Add(U1(q, lambda)) }
func (c *Circuit) AddU2Gate(q int, phi, lambda float64) error {
	return c.Add(U2(q, phi, lambda))
}
func (c *Circuit) AddU3Gate(q int, theta, phi, lambda float64) error {
	return c.Add(U3(q, theta, phi, lambda))
}
func (c *Circuit) AddRXGate(q int, theta float64) error { return c.Add(RX(q, theta)) }
func (c *Circuit) AddRYGate(q int, theta float64) error { return c.Add(RY(q, theta)) }
func (c *Circuit) AddRZGate(q int, theta float64) error { return c.Add(RZ(q, theta)) }

func (c *Circuit) AddCNOTGate(control, target int) error { return c.Add(CNOT(control, target)) }
func (c *Circuit) AddCZGate(control, target int) error   { return c.Add(CZ(control, target)) }
func (c *Circuit) AddSWAPGate(q1, q2 int) error          { return c.Add(SWAP(q1, q2)) }
func (c *Circuit) AddToffoliGate(control1, control2, target int) error {
	return c.Add(Toffoli(control1, control2, target))
}

func (c *Circuit) AddUnitaryMatrixGate(targets []int, mat Matrix) error {
	g, err := UnitaryMatrix(targets, mat)
	if err != nil {
		return err
	}
	return c.Add(g)
}

func (c *Circuit) AddSingleQubitUnitaryMatrixGate(q int, mat Matrix) error {
	return c.AddUnitaryMatrixGate([]int{q}, mat)
}

func (c *Circuit) AddTwoQubitUnitaryMatrixGate(q1, q2 int, mat Matrix) error {
	return c.AddUnitaryMatrixGate([]int{q1, q2}, mat)
}

func (c *Circuit) AddPauliGate(targets []int, pauliIDs []PauliID) error {
	g, err := Pauli(targets, pauliIDs)
	if err != nil {
		return err
	}
	return c.Add(g)
}

func (c *Circuit) AddPauliRotationGate(targets []int, pauliIDs []PauliID, angle float64) error {
	g, err := PauliRotation(targets, pauliIDs, angle)
	if err != nil {
		return err
	}
	return c.Add(g)
}
