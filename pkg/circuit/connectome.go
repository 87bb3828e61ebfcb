package circuit

import (
	"fmt"

	"github.com/edp1096/bias-netlist/pkg/netlist"
)

// Connectome holds the node indices wiring the grid together. synapse[hill][axn]
// is the output node of the junction feeding neuron hill from neuron axn.
// Every synapse cell is written once and then only read.
type Connectome struct {
	n       int
	axon    []int
	hillock []int
	synapse [][]int
	written [][]bool
	reads   [][]int
}

func NewConnectome(n int) *Connectome {
	c := &Connectome{
		n:       n,
		axon:    make([]int, n),
		hillock: make([]int, n),
		synapse: make([][]int, n),
		written: make([][]bool, n),
		reads:   make([][]int, n),
	}
	for i := 0; i < n; i++ {
		c.synapse[i] = make([]int, n)
		c.written[i] = make([]bool, n)
		c.reads[i] = make([]int, n)
	}
	return c
}

func (c *Connectome) Size() int {
	return c.n
}

func (c *Connectome) check(i int) error {
	if i < 0 || i >= c.n {
		return fmt.Errorf("%w: neuron index %d not in [0, %d)", netlist.ErrInvalidTopology, i, c.n)
	}
	return nil
}

func (c *Connectome) Axon(i int) (int, error) {
	if err := c.check(i); err != nil {
		return 0, err
	}
	return c.axon[i], nil
}

func (c *Connectome) SetAxon(i, node int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.axon[i] = node
	return nil
}

// Hillock is allocated for every neuron but not wired by the assemblers.
func (c *Connectome) Hillock(i int) (int, error) {
	if err := c.check(i); err != nil {
		return 0, err
	}
	return c.hillock[i], nil
}

func (c *Connectome) SetHillock(i, node int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.hillock[i] = node
	return nil
}

func (c *Connectome) SetSynapse(hill, axn, node int) error {
	if err := c.check(hill); err != nil {
		return err
	}
	if err := c.check(axn); err != nil {
		return err
	}
	if c.written[hill][axn] {
		return fmt.Errorf("%w: synapse[%d][%d] already written", netlist.ErrInvalidTopology, hill, axn)
	}
	c.synapse[hill][axn] = node
	c.written[hill][axn] = true
	return nil
}

// Synapse returns a written cell and counts the read.
func (c *Connectome) Synapse(hill, axn int) (int, error) {
	if err := c.check(hill); err != nil {
		return 0, err
	}
	if err := c.check(axn); err != nil {
		return 0, err
	}
	if !c.written[hill][axn] {
		return 0, fmt.Errorf("%w: synapse[%d][%d] read before written", netlist.ErrInvalidTopology, hill, axn)
	}
	c.reads[hill][axn]++
	return c.synapse[hill][axn], nil
}

func (c *Connectome) Written(hill, axn int) bool {
	if c.check(hill) != nil || c.check(axn) != nil {
		return false
	}
	return c.written[hill][axn]
}

func (c *Connectome) Reads(hill, axn int) int {
	if c.check(hill) != nil || c.check(axn) != nil {
		return 0
	}
	return c.reads[hill][axn]
}

// Row returns every synapse into neuron hill without counting the reads.
// It fails, with no side effect, if any cell is still unwritten.
func (c *Connectome) Row(hill int) ([]int, error) {
	if err := c.check(hill); err != nil {
		return nil, err
	}
	for axn := 0; axn < c.n; axn++ {
		if !c.written[hill][axn] {
			return nil, fmt.Errorf("%w: synapse[%d][%d] read before written", netlist.ErrInvalidTopology, hill, axn)
		}
	}
	row := make([]int, c.n)
	copy(row, c.synapse[hill])
	return row, nil
}

// commitRow counts one read of every cell of a row taken with Row.
func (c *Connectome) commitRow(hill int) {
	for axn := range c.reads[hill] {
		c.reads[hill][axn]++
	}
}
