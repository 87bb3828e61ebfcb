package circuit

import (
	"github.com/edp1096/bias-netlist/internal/consts"
	"github.com/edp1096/bias-netlist/pkg/netlist"
)

// CalibrationNode is the reference the neuron multiplier scales against, the
// global threshold source.
const CalibrationNode = consts.ThresholdNode

// Neuron builds the body of neuron hill: the sum of all synapses into it,
// minus the threshold, scaled by the calibration multiplier and wired into
// axon[hill]. A summing hold loop on the axon follows.
//
// On error nothing is left behind: the lines emitted so far are rolled back
// and no synapse read is counted.
func (c *Circuit) Neuron(hill int) (err error) {
	rval, cval := c.cfg.Resistance, c.cfg.Capacitance

	axon, err := c.grid.Axon(hill)
	if err != nil {
		return err
	}
	row, err := c.grid.Row(hill)
	if err != nil {
		return err
	}

	mark := c.net.Mark()
	defer func() {
		if err != nil {
			c.net.Rollback(mark)
		}
	}()

	charge := make([]netlist.Input, len(row))
	for i, node := range row {
		charge[i] = netlist.Input{Value: rval, Node: node}
	}
	if err := c.net.SumAmp(charge); err != nil {
		return err
	}
	sum := c.net.Cursor()

	// Threshold subtraction
	inn := netlist.Input{Value: rval, Node: sum + 1}
	if !c.cfg.ShadowedDiffInput {
		if _, err := c.net.Reserve(); err != nil {
			return err
		}
		inn.Node = sum
	}
	err = c.net.DiffAmp(netlist.Input{Value: rval, Node: consts.ThresholdNode}, inn)
	if err != nil {
		return err
	}

	if err := c.net.Multiplier(CalibrationNode, c.net.Cursor(), rval); err != nil {
		return err
	}
	if err := c.net.Wire(c.net.Cursor(), axon); err != nil {
		return err
	}

	// Hold loop
	fb := c.net.Cursor()
	err = c.net.SumAmp([]netlist.Input{
		{Value: rval, Node: axon},
		{Value: rval, Node: fb + feedbackOffset},
	})
	if err != nil {
		return err
	}
	if err := c.net.SampleHold(cval); err != nil {
		return err
	}
	if c.cfg.DualAxonDrive {
		if err := c.net.Wire(c.net.Cursor(), axon); err != nil {
			return err
		}
	}

	c.grid.commitRow(hill)
	return nil
}
