package circuit

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/edp1096/bias-netlist/internal/consts"
	"github.com/edp1096/bias-netlist/pkg/device"
	"github.com/edp1096/bias-netlist/pkg/netlist"
	"github.com/edp1096/bias-netlist/pkg/util"
)

// Circuit is one synthesis run: the netlist builder, the connectome and the
// run parameters. It is not safe for concurrent use; the call order decides
// the node numbering.
type Circuit struct {
	cfg      Config
	net      *netlist.Builder
	grid     *Connectome
	logger   *log.Logger
	started  bool
	complete bool
}

func New(cfg Config) (*Circuit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Circuit{
		cfg:  cfg,
		net:  netlist.NewBuilder(cfg.options()),
		grid: NewConnectome(cfg.Neurons),
	}, nil
}

// SetLogger enables one progress line per neuron row.
func (c *Circuit) SetLogger(l *log.Logger) {
	c.logger = l
}

func (c *Circuit) Config() Config {
	return c.cfg
}

func (c *Circuit) Netlist() *netlist.Builder {
	return c.net
}

func (c *Circuit) Connectome() *Connectome {
	return c.grid
}

// DesignID names the run parameters. Equal parameters give equal ids.
func (c *Circuit) DesignID() uuid.UUID {
	key := fmt.Sprintf("n=%d rval=%s cval=%s threshold=%s dual=%t shadowed=%t",
		c.cfg.Neurons,
		util.FormatValue(c.cfg.Resistance, util.ShortestPrecision),
		util.FormatValue(c.cfg.Capacitance, util.ShortestPrecision),
		util.FormatValue(c.cfg.Threshold, util.ShortestPrecision),
		c.cfg.DualAxonDrive, c.cfg.ShadowedDiffInput)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
}

// title is the first line of the deck. SPICE always reads that line as the
// title card, never as a component.
func (c *Circuit) title() string {
	p := c.cfg.Precision
	return fmt.Sprintf("* %s n=%d rval=%s cval=%s id=%s", c.cfg.Title, c.cfg.Neurons,
		util.FormatValue(c.cfg.Resistance, p), util.FormatValue(c.cfg.Capacitance, p), c.DesignID())
}

// Allocate lays out the fixed node ranges: axons at [3, 3+n), hillocks at
// [n+3, 2n+3), and leaves the cursor at 2n+2.
func (c *Circuit) Allocate() error {
	n := c.cfg.Neurons
	for i := 0; i < n; i++ {
		if err := c.grid.SetAxon(i, consts.AxonBase+i); err != nil {
			return err
		}
		if err := c.grid.SetHillock(i, n+consts.AxonBase+i); err != nil {
			return err
		}
	}
	return c.net.SetCursor(2*n + 2)
}

// Synthesize builds the whole grid. Rows run in order; every junction of a
// row is built before the neuron that reads them. A failed run leaves the
// buffer empty and the circuit refuses to be written.
func (c *Circuit) Synthesize() (err error) {
	if c.started {
		return fmt.Errorf("%w: circuit already synthesized", netlist.ErrInvalidTopology)
	}
	c.started = true

	mark := c.net.Mark()
	defer func() {
		if err != nil {
			c.net.Rollback(mark)
		}
	}()

	c.net.Directive(c.title())
	if err := c.Allocate(); err != nil {
		return err
	}

	n := c.cfg.Neurons
	for hill := 0; hill < n; hill++ {
		for axn := 0; axn < n; axn++ {
			if err := c.Junction(hill, axn); err != nil {
				return fmt.Errorf("junction (%d, %d): %w", hill, axn, err)
			}
		}
		if err := c.Neuron(hill); err != nil {
			return fmt.Errorf("neuron %d: %w", hill, err)
		}
		if c.logger != nil {
			c.logger.Printf("neuron %d/%d done, cursor %d, %d lines", hill+1, n, c.net.Cursor(), c.net.Len())
		}
	}

	source := device.NewDCSource(consts.SourceName, consts.ThresholdNode, c.cfg.Threshold)
	c.net.Directive(source.Render(c.cfg.Precision))
	c.net.Directive(device.Model(consts.DiodeModel, "d"))
	c.net.Directive(device.End)
	c.complete = true
	return nil
}

// Complete reports whether Synthesize ran to the terminating .end.
func (c *Circuit) Complete() bool {
	return c.complete
}

func (c *Circuit) checkComplete() error {
	if !c.complete {
		return fmt.Errorf("%w: netlist incomplete, synthesis did not finish", netlist.ErrInvalidTopology)
	}
	return nil
}

// WriteTo writes the synthesized netlist. An incomplete run writes nothing.
func (c *Circuit) WriteTo(w io.Writer) (int64, error) {
	if err := c.checkComplete(); err != nil {
		return 0, err
	}
	return c.net.WriteTo(w)
}

func (c *Circuit) WriteFile(path string) error {
	if err := c.checkComplete(); err != nil {
		return err
	}
	return c.net.WriteFile(path)
}

// Generate synthesizes a grid for cfg and writes it to w.
func Generate(cfg Config, w io.Writer) error {
	ckt, err := New(cfg)
	if err != nil {
		return err
	}
	if err := ckt.Synthesize(); err != nil {
		return err
	}
	_, err = ckt.WriteTo(w)
	return err
}
