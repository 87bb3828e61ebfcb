package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edp1096/bias-netlist/pkg/device"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		dev  device.Device
		want string
	}{
		{"Resistor", device.NewResistor(3, 10, 11, 1000), "r3 10 11 1000k"},
		{"Wire", device.NewResistor(0, 27, 3, 0), "r0 27 3 0k"},
		{"Capacitor", device.NewCapacitor(1, 6, 0, 1000), "c1 6 0 1000u"},
		{"Amplifier", device.NewAmplifier(2, 10, 9, 8, "999k"), "e2 10 0 9 8 999k"},
		{"Diode", device.NewDiode(4, 13, 14, "mod1"), "d4 13 14 mod1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dev.Render(-1))
		})
	}
}

func TestRender_Precision(t *testing.T) {
	r := device.NewResistor(0, 1, 2, 4.7)
	assert.Equal(t, "r0 1 2 4.700k", r.Render(3))

	v := device.NewDCSource("v1", 1, 10)
	assert.Equal(t, "v1 1 dc 10", v.Render(-1))
	assert.Equal(t, "v1 1 dc 10.0", v.Render(1))
}

func TestNameAndKind(t *testing.T) {
	a := device.NewAmplifier(12, 30, 29, 28, "999k")
	assert.Equal(t, "e12", a.GetName())
	assert.Equal(t, device.KindAmplifier, a.GetType())
	assert.Equal(t, 30, a.Out())
	assert.Equal(t, []int{30, 29, 28}, a.GetNodes())

	assert.True(t, device.NewResistor(0, 1, 2, 0).IsWire())
	assert.False(t, device.NewResistor(0, 1, 2, 1).IsWire())

	assert.Equal(t, "r", device.KindResistor.Prefix())
	assert.Equal(t, "c", device.KindCapacitor.Prefix())
	assert.Equal(t, "e", device.KindAmplifier.Prefix())
	assert.Equal(t, "d", device.KindDiode.Prefix())
	assert.Equal(t, "diode", device.KindDiode.String())
}

func TestDirectives(t *testing.T) {
	assert.Equal(t, ".model mod1 d", device.Model("mod1", "d"))
	assert.Equal(t, ".end", device.End)
}
