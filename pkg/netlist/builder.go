package netlist

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/edp1096/bias-netlist/internal/consts"
	"github.com/edp1096/bias-netlist/pkg/device"
	"github.com/edp1096/bias-netlist/pkg/util"
)

type Options struct {
	Precision int // Decimals of rendered values, util.ShortestPrecision for shortest
	MaxNode   int // Highest node index a builder may allocate or reference
}

func DefaultOptions() Options {
	return Options{
		Precision: util.ShortestPrecision,
		MaxNode:   math.MaxInt32,
	}
}

// Builder is the netlist buffer and node cursor of one synthesis run.
// The cursor holds the output node of the most recently appended
// sub-circuit. Builders needing k new nodes take cursor+1 .. cursor+k.
type Builder struct {
	opts   Options
	lines  []string
	counts [device.NumKinds]int
	cursor int
}

func NewBuilder(opts Options) *Builder {
	if opts.MaxNode <= 0 {
		opts.MaxNode = DefaultOptions().MaxNode
	}
	return &Builder{opts: opts}
}

func (b *Builder) Options() Options {
	return b.opts
}

func (b *Builder) Cursor() int {
	return b.cursor
}

func (b *Builder) SetCursor(node int) error {
	if err := b.checkNode(node); err != nil {
		return err
	}
	b.cursor = node
	return nil
}

// Reserve allocates one fresh node and moves the cursor onto it.
func (b *Builder) Reserve() (int, error) {
	if err := b.checkSpan(1); err != nil {
		return 0, err
	}
	b.cursor++
	return b.cursor, nil
}

// Mark is a snapshot of the buffer, counters and cursor.
type Mark struct {
	lines  int
	counts [device.NumKinds]int
	cursor int
}

func (b *Builder) Mark() Mark {
	return Mark{lines: len(b.lines), counts: b.counts, cursor: b.cursor}
}

// Rollback drops everything emitted since m and restores the counters and
// cursor it recorded.
func (b *Builder) Rollback(m Mark) {
	if m.lines < len(b.lines) {
		b.lines = b.lines[:m.lines]
	}
	b.counts = m.counts
	b.cursor = m.cursor
}

// Count returns how many instances of kind were emitted so far.
func (b *Builder) Count(kind device.Kind) int {
	if kind < 0 || int(kind) >= device.NumKinds {
		return 0
	}
	return b.counts[kind]
}

func (b *Builder) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *Builder) Len() int {
	return len(b.lines)
}

// Directive appends a line that is not a counted component: title comment,
// sources, model cards, terminator.
func (b *Builder) Directive(line string) {
	b.lines = append(b.lines, line)
}

func (b *Builder) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrIO, err)
	}
	return int64(n), nil
}

// WriteFile flushes the buffer to path, replacing any existing file.
func (b *Builder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, path, err)
	}
	return nil
}

func (b *Builder) next(kind device.Kind) int {
	seq := b.counts[kind]
	b.counts[kind]++
	return seq
}

func (b *Builder) emit(dev device.Device) {
	b.lines = append(b.lines, dev.Render(b.opts.Precision))
}

func (b *Builder) resistor(n1, n2 int, value float64) {
	b.emit(device.NewResistor(b.next(device.KindResistor), n1, n2, value))
}

func (b *Builder) capacitor(n1, n2 int, value float64) {
	b.emit(device.NewCapacitor(b.next(device.KindCapacitor), n1, n2, value))
}

func (b *Builder) diode(anode, cathode int) {
	b.emit(device.NewDiode(b.next(device.KindDiode), anode, cathode, consts.DiodeModel))
}

// amplifier callers check out != ground before emitting anything.
func (b *Builder) amplifier(out, inp, inn int) {
	b.emit(device.NewAmplifier(b.next(device.KindAmplifier), out, inp, inn, consts.AmpGain))
}

func (b *Builder) checkNode(node int) error {
	if node < 0 {
		return topologyErr("negative node %d", node)
	}
	if node > b.opts.MaxNode {
		return fmt.Errorf("%w: node %d, max %d", ErrNodeOverflow, node, b.opts.MaxNode)
	}
	return nil
}

// checkSpan verifies cursor+1 .. cursor+k can be allocated.
func (b *Builder) checkSpan(k int) error {
	if b.cursor > b.opts.MaxNode-k {
		return fmt.Errorf("%w: need %d nodes after %d, max %d", ErrNodeOverflow, k, b.cursor, b.opts.MaxNode)
	}
	return nil
}

func checkValue(what string, value float64) error {
	if !util.IsFinitePositive(value) {
		return topologyErr("%s value %v must be positive", what, value)
	}
	return nil
}
