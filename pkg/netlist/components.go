package netlist

import (
	"github.com/edp1096/bias-netlist/internal/consts"
)

// MultiplierAdvance is the number of fresh nodes the multiplier takes. Its
// output lands on cursor+MultiplierAdvance.
const MultiplierAdvance = 7

// Input is one resistor-coupled source feeding an amplifier stage.
type Input struct {
	Value float64 // kilo-ohms
	Node  int
}

// Wire joins two existing nodes with a zero valued resistor. The cursor does
// not move. A self loop is rejected.
func (b *Builder) Wire(n1, n2 int) error {
	if err := b.checkNode(n1); err != nil {
		return err
	}
	if err := b.checkNode(n2); err != nil {
		return err
	}
	if n1 == n2 {
		return topologyErr("wire from node %d to itself", n1)
	}
	b.resistor(n1, n2, 0)
	return nil
}

// InvAmp is an inverting amplifier fed from the cursor node.
//
//	r  c   c+1  rval   input
//	r  c+1 c+2  rval   feedback
//	e  c+2 0 0 c+1
func (b *Builder) InvAmp(rval float64) error {
	if err := checkValue("inverting amp resistor", rval); err != nil {
		return err
	}
	if err := b.checkSpan(2); err != nil {
		return err
	}
	c := b.cursor
	if err := checkDriven(c + 2); err != nil {
		return err
	}

	b.resistor(c, c+1, rval)
	b.resistor(c+1, c+2, rval)
	b.amplifier(c+2, consts.GroundNode, c+1)

	b.cursor = c + 2
	return nil
}

// SumAmp sums every input at the cursor node, the shared virtual junction.
// All inputs are assumed to carry the same value; the feedback resistor
// takes the first one.
func (b *Builder) SumAmp(inputs []Input) error {
	if len(inputs) == 0 {
		return topologyErr("summing amp without inputs")
	}
	for _, in := range inputs {
		if err := checkValue("summing amp resistor", in.Value); err != nil {
			return err
		}
		if err := b.checkNode(in.Node); err != nil {
			return err
		}
	}
	if err := b.checkSpan(1); err != nil {
		return err
	}
	c := b.cursor
	if err := checkDriven(c + 1); err != nil {
		return err
	}

	for _, in := range inputs {
		b.resistor(in.Node, c, in.Value)
	}
	b.resistor(c, c+1, inputs[0].Value)
	b.amplifier(c+1, consts.GroundNode, c)

	b.cursor = c + 1
	return nil
}

// DiffAmp subtracts inn from inp. The inputs terminate at their own summing
// nodes: inn at the cursor, inp at cursor+1.
//
//	r  inp c+1          r  c+1 0
//	r  inn c            r  c   c+2   feedback
//	e  c+2 0 c+1 c
func (b *Builder) DiffAmp(inp, inn Input) error {
	for _, in := range []Input{inp, inn} {
		if err := checkValue("differential amp resistor", in.Value); err != nil {
			return err
		}
		if err := b.checkNode(in.Node); err != nil {
			return err
		}
	}
	if err := b.checkSpan(2); err != nil {
		return err
	}
	c := b.cursor
	if err := checkDriven(c + 2); err != nil {
		return err
	}

	b.resistor(inp.Node, c+1, inp.Value)
	b.resistor(inn.Node, c, inn.Value)
	b.resistor(c+1, consts.GroundNode, inp.Value)
	b.resistor(c, c+2, inn.Value)
	b.amplifier(c+2, c+1, c)

	b.cursor = c + 2
	return nil
}

// SampleHold is two cascaded unity gain buffers with the holding capacitor
// on the node between them. There is no track/hold switch, the stage always
// tracks.
func (b *Builder) SampleHold(cval float64) error {
	if err := checkValue("sample and hold capacitor", cval); err != nil {
		return err
	}
	if err := b.checkSpan(2); err != nil {
		return err
	}
	c := b.cursor
	if err := checkDriven(c + 1); err != nil {
		return err
	}

	b.amplifier(c+1, c, c+1)
	b.amplifier(c+2, c+1, c+2)
	b.capacitor(c+1, consts.GroundNode, cval)

	b.cursor = c + 2
	return nil
}

// Multiplier approximates v1*v2 with logarithm and antilogarithm stages.
// v1 and v2 are absolute, already allocated nodes. Like the summing amp the
// first stage uses the cursor node as its junction; the fresh nodes are
// cursor+1 .. cursor+MultiplierAdvance.
//
//	log v1       junction c    out c+1
//	buffer       out c+2       (reference for the stacked log)
//	log v2       junction c+3  out c+4   = log v1 + log v2
//	antilog      junction c+5  out c+6
//	output       out c+7
//
// The remaining resistors load each stage output and terminate the inputs.
//
// No stage sits on v1+1 or v2+1. When v1 is axon[i] that node is axon[i+1],
// so a log stage there would short two neighbouring axons.
func (b *Builder) Multiplier(v1, v2 int, rval float64) error {
	if err := checkValue("multiplier resistor", rval); err != nil {
		return err
	}
	for _, v := range []int{v1, v2} {
		if v <= consts.GroundNode || v > b.cursor {
			return topologyErr("multiplier input %d not in [1, %d]", v, b.cursor)
		}
	}
	if err := b.checkSpan(MultiplierAdvance); err != nil {
		return err
	}
	c := b.cursor
	if err := checkDriven(c + 1); err != nil {
		return err
	}

	var (
		log1 = c + 1
		ref  = c + 2
		sum2 = c + 3
		log2 = c + 4
		sum3 = c + 5
		anti = c + 6
		out  = c + MultiplierAdvance
	)

	b.amplifier(log1, consts.GroundNode, c)
	b.amplifier(ref, log1, ref)
	b.amplifier(log2, ref, sum2)
	b.amplifier(anti, consts.GroundNode, sum3)
	b.amplifier(out, anti, out)

	b.resistor(v1, c, rval)
	b.resistor(v2, sum2, rval)
	b.resistor(sum3, anti, rval)
	b.resistor(log1, consts.GroundNode, rval)
	b.resistor(ref, consts.GroundNode, rval)
	b.resistor(log2, consts.GroundNode, rval)
	b.resistor(anti, consts.GroundNode, rval)
	b.resistor(out, consts.GroundNode, rval)
	b.resistor(v1, consts.GroundNode, rval)
	b.resistor(v2, consts.GroundNode, rval)

	b.diode(c, log1)
	b.diode(sum2, log2)
	b.diode(sum3, log2)

	b.cursor = out
	return nil
}

func checkDriven(out int) error {
	if out == consts.GroundNode {
		return topologyErr("amplifier output on ground")
	}
	return nil
}
