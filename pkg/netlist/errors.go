package netlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTopology reports a builder call that would produce a
	// malformed netlist: empty inputs, bad node indices, bad values.
	ErrInvalidTopology = errors.New("netlist: invalid topology")

	// ErrNodeOverflow is an ErrInvalidTopology raised when a node index
	// would pass the configured MaxNode.
	ErrNodeOverflow = fmt.Errorf("%w: node index overflow", ErrInvalidTopology)

	// ErrIO reports a failure of the output sink.
	ErrIO = errors.New("netlist: output error")
)

func topologyErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTopology, fmt.Sprintf(format, args...))
}
