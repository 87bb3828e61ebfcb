package circuit

import (
	"fmt"
	"math"

	"github.com/edp1096/bias-netlist/internal/consts"
	"github.com/edp1096/bias-netlist/pkg/netlist"
	"github.com/edp1096/bias-netlist/pkg/util"
)

type Config struct {
	Title       string
	Neurons     int     // Grid size n
	Resistance  float64 // rval, kilo-ohms
	Capacitance float64 // cval, micro-farads
	Threshold   float64 // Global threshold source, volts

	// DualAxonDrive keeps the feedback hold path wired into the axon in
	// parallel with the direct path. Off, the direct path drives it alone.
	DualAxonDrive bool

	// ShadowedDiffInput feeds the neuron threshold subtractor from
	// cursor+1, the node left by the overwritten source assignment. Off, it
	// is fed from the summing amp output through a reserved junction.
	ShadowedDiffInput bool

	Precision int
	MaxNode   int
}

func DefaultConfig() Config {
	opts := netlist.DefaultOptions()
	return Config{
		Title:             "bias neuron grid",
		Neurons:           5,
		Resistance:        1000,
		Capacitance:       1000,
		Threshold:         10,
		DualAxonDrive:     true,
		ShadowedDiffInput: true,
		Precision:         opts.Precision,
		MaxNode:           opts.MaxNode,
	}
}

func (c Config) Validate() error {
	if c.Neurons < 1 || c.Neurons > consts.MaxNeurons {
		return fmt.Errorf("%w: neuron count %d not in [1, %d]", netlist.ErrInvalidTopology, c.Neurons, consts.MaxNeurons)
	}
	if !util.IsFinitePositive(c.Resistance) {
		return fmt.Errorf("%w: resistance %v must be positive", netlist.ErrInvalidTopology, c.Resistance)
	}
	if !util.IsFinitePositive(c.Capacitance) {
		return fmt.Errorf("%w: capacitance %v must be positive", netlist.ErrInvalidTopology, c.Capacitance)
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: threshold %v must be finite", netlist.ErrInvalidTopology, c.Threshold)
	}
	if c.MaxNode < 2*c.Neurons+2 {
		return fmt.Errorf("%w: max node %d below the reserved axon and hillock range", netlist.ErrNodeOverflow, c.MaxNode)
	}
	return nil
}

func (c Config) options() netlist.Options {
	return netlist.Options{Precision: c.Precision, MaxNode: c.MaxNode}
}
