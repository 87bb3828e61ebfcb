package device

type Resistor struct {
	BaseDevice
}

// NewResistor values are in kilo-ohms. A zero value is an ideal wire.
func NewResistor(seq, n1, n2 int, value float64) *Resistor {
	return &Resistor{
		BaseDevice: BaseDevice{
			Seq:   seq,
			Nodes: []int{n1, n2},
			Value: value,
		},
	}
}

func (r *Resistor) GetType() Kind { return KindResistor }

func (r *Resistor) GetName() string { return r.name(KindResistor) }

// Render -> r<seq> <n1> <n2> <value>k
func (r *Resistor) Render(precision int) string {
	return r.line(KindResistor, formatValue(r.Value, precision, "k"))
}

func (r *Resistor) IsWire() bool { return r.Value == 0 }
