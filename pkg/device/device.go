package device

import (
	"fmt"
	"strings"

	"github.com/edp1096/bias-netlist/pkg/util"
)

type Kind int

const (
	KindResistor Kind = iota
	KindCapacitor
	KindAmplifier
	KindDiode

	NumKinds = 4
)

var kindPrefix = [NumKinds]string{"r", "c", "e", "d"}

// Prefix is the element letter used in the rendered name.
func (k Kind) Prefix() string {
	if k < 0 || int(k) >= NumKinds {
		return "?"
	}
	return kindPrefix[k]
}

func (k Kind) String() string {
	switch k {
	case KindResistor:
		return "resistor"
	case KindCapacitor:
		return "capacitor"
	case KindAmplifier:
		return "amplifier"
	case KindDiode:
		return "diode"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Device is one rendered component instance of the netlist.
type Device interface {
	GetName() string
	GetType() Kind
	GetNodes() []int
	GetValue() float64
	Render(precision int) string
}

type BaseDevice struct {
	Seq   int
	Nodes []int
	Value float64
}

func (d *BaseDevice) GetNodes() []int {
	return d.Nodes
}

func (d *BaseDevice) GetValue() float64 {
	return d.Value
}

func (d *BaseDevice) name(k Kind) string {
	return fmt.Sprintf("%s%d", k.Prefix(), d.Seq)
}

// line joins name, nodes and any trailing fields with single spaces.
func (d *BaseDevice) line(k Kind, tail ...string) string {
	fields := make([]string, 0, 1+len(d.Nodes)+len(tail))
	fields = append(fields, d.name(k))
	for _, n := range d.Nodes {
		fields = append(fields, fmt.Sprint(n))
	}
	fields = append(fields, tail...)
	return strings.Join(fields, " ")
}

func formatValue(value float64, precision int, unit string) string {
	return util.FormatValue(value, precision) + unit
}
