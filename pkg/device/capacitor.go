package device

type Capacitor struct {
	BaseDevice
}

// NewCapacitor values are in micro-farads.
func NewCapacitor(seq, n1, n2 int, value float64) *Capacitor {
	return &Capacitor{
		BaseDevice: BaseDevice{
			Seq:   seq,
			Nodes: []int{n1, n2},
			Value: value,
		},
	}
}

func (c *Capacitor) GetType() Kind { return KindCapacitor }

func (c *Capacitor) GetName() string { return c.name(KindCapacitor) }

// Render -> c<seq> <n1> <n2> <value>u
func (c *Capacitor) Render(precision int) string {
	return c.line(KindCapacitor, formatValue(c.Value, precision, "u"))
}
