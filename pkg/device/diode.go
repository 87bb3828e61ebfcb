package device

type Diode struct {
	BaseDevice
	Model string
}

// NewDiode conducts from anode to cathode.
func NewDiode(seq, anode, cathode int, model string) *Diode {
	return &Diode{
		BaseDevice: BaseDevice{
			Seq:   seq,
			Nodes: []int{anode, cathode},
		},
		Model: model,
	}
}

func (d *Diode) GetType() Kind { return KindDiode }

func (d *Diode) GetName() string { return d.name(KindDiode) }

// Render -> d<seq> <anode> <cathode> <model>
func (d *Diode) Render(precision int) string {
	return d.line(KindDiode, d.Model)
}
