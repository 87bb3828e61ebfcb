package device

// Amplifier is an ideal op-amp modeled as a voltage controlled voltage
// source referenced to ground: e<seq> out 0 in+ in- gain
type Amplifier struct {
	BaseDevice
	Gain string
}

func NewAmplifier(seq, out, inp, inn int, gain string) *Amplifier {
	return &Amplifier{
		BaseDevice: BaseDevice{
			Seq:   seq,
			Nodes: []int{out, inp, inn},
		},
		Gain: gain,
	}
}

func (a *Amplifier) GetType() Kind { return KindAmplifier }

func (a *Amplifier) GetName() string { return a.name(KindAmplifier) }

func (a *Amplifier) Out() int { return a.Nodes[0] }
func (a *Amplifier) Inp() int { return a.Nodes[1] }
func (a *Amplifier) Inn() int { return a.Nodes[2] }

// Render -> e<seq> <out> 0 <in+> <in-> <gain>
func (a *Amplifier) Render(precision int) string {
	b := BaseDevice{Seq: a.Seq, Nodes: []int{a.Out(), 0, a.Inp(), a.Inn()}}
	return b.line(KindAmplifier, a.Gain)
}
