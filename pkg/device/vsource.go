package device

import "fmt"

// DCSource is a DC voltage source between a node and ground. It is outside
// the per-kind counters, the name is given by the caller.
type DCSource struct {
	Name  string
	Node  int
	Value float64
}

func NewDCSource(name string, node int, value float64) *DCSource {
	return &DCSource{Name: name, Node: node, Value: value}
}

// Render -> <name> <node> dc <value>
func (v *DCSource) Render(precision int) string {
	return fmt.Sprintf("%s %d dc %s", v.Name, v.Node, formatValue(v.Value, precision, ""))
}

// Model renders a model card, ".model mod1 d".
func Model(name, typ string) string {
	return fmt.Sprintf(".model %s %s", name, typ)
}

const End = ".end"
