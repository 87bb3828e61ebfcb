package circuit

import (
	"fmt"

	"github.com/edp1096/bias-netlist/internal/consts"
	"github.com/edp1096/bias-netlist/pkg/netlist"
)

// feedbackOffset is how far ahead of a stage's starting cursor the summing
// amp taps its feedback node.
const feedbackOffset = 4

// Junction builds the synapse carrying axon[axn] into neuron hill and
// records its output node in synapse[hill][axn].
//
//	sum(axon[axn], c0+4) -> sample/hold -> reserve c0+4
//	-> diff(threshold, hold) -> multiply(axon[axn], cursor)
//
// A failing stage rolls back every line the junction emitted.
func (c *Circuit) Junction(hill, axn int) (err error) {
	rval, cval := c.cfg.Resistance, c.cfg.Capacitance

	if err := c.grid.check(hill); err != nil {
		return err
	}
	axon, err := c.grid.Axon(axn)
	if err != nil {
		return err
	}
	if c.grid.Written(hill, axn) {
		return fmt.Errorf("%w: synapse[%d][%d] already built", netlist.ErrInvalidTopology, hill, axn)
	}

	mark := c.net.Mark()
	defer func() {
		if err != nil {
			c.net.Rollback(mark)
		}
	}()

	c0 := c.net.Cursor()
	err = c.net.SumAmp([]netlist.Input{
		{Value: rval, Node: axon},
		{Value: rval, Node: c0 + feedbackOffset},
	})
	if err != nil {
		return err
	}
	if err := c.net.SampleHold(cval); err != nil {
		return err
	}
	hold := c.net.Cursor()

	if _, err := c.net.Reserve(); err != nil {
		return err
	}
	err = c.net.DiffAmp(
		netlist.Input{Value: rval, Node: consts.ThresholdNode},
		netlist.Input{Value: rval, Node: hold},
	)
	if err != nil {
		return err
	}
	if err := c.net.Multiplier(axon, c.net.Cursor(), rval); err != nil {
		return err
	}

	return c.grid.SetSynapse(hill, axn, c.net.Cursor())
}
