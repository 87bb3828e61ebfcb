package netlist_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/bias-netlist/pkg/netlist"
)

const smallNetlist = `* two stage test
r0 3 4 1000k
r1 4 5 1000k   * feedback
e0 5 0 0 4 999k
c0 5 0
+ 1000u
d0 5 6 mod1
v1 1 dc 10
.model mod1 d
.end
`

func TestParse(t *testing.T) {
	data, err := netlist.Parse(smallNetlist)
	require.NoError(t, err)

	assert.Equal(t, "two stage test", data.Title)
	assert.True(t, data.Ended)
	assert.Equal(t, "D", data.Models["mod1"])
	require.Len(t, data.Elements, 6)

	assert.Equal(t, 2, data.Count("R"))
	assert.Equal(t, 1, data.Count("C"))
	assert.Equal(t, 1, data.Count("E"))
	assert.Equal(t, 1, data.Count("D"))
	assert.Equal(t, 1, data.Count("V"))

	e := data.Elements[2]
	assert.Equal(t, "E", e.Type)
	assert.Equal(t, []string{"5", "0", "0", "4"}, e.Nodes)
	assert.Equal(t, 999e3, e.Value)

	c := data.Elements[3]
	assert.Equal(t, []string{"5", "0"}, c.Nodes)
	assert.InDelta(t, 1e-3, c.Value, 1e-12, "continued line joined")

	v := data.Elements[5]
	assert.Equal(t, []string{"1"}, v.Nodes)
	assert.Equal(t, 10.0, v.Value)

	require.NoError(t, data.Check())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Unsupported", "* t\nq1 1 2 3 qmod\n"},
		{"AfterEnd", "* t\nr0 1 2 1k\n.end\nr1 2 3 1k\n"},
		{"BadValue", "* t\nr0 1 2 abc\n"},
		{"UnknownDot", "* t\n.tran 1u 1m\n"},
		{"ShortAmplifier", "* t\ne0 5 0 0 999k\n"},
		{"DanglingContinuation", "* t\n+ 1k\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netlist.Parse(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestCheck_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Gap", "* t\nr0 1 2 1k\nr2 2 3 1k\n.end\n"},
		{"Repeat", "* t\ne0 2 0 0 1 999k\ne0 3 0 0 2 999k\n.end\n"},
		{"DrivenGround", "* t\ne0 0 0 1 2 999k\n.end\n"},
		{"SourceOnGround", "* t\nv1 0 dc 10\n.end\n"},
		{"UndefinedModel", "* t\nd0 1 2 mod1\n.end\n"},
		{"Unterminated", "* t\nr0 1 2 1k\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := netlist.Parse(tc.input)
			require.NoError(t, err)
			assert.ErrorIs(t, data.Check(), netlist.ErrInvalidTopology)
		})
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1000k", 1e6},
		{"0k", 0},
		{"999k", 999e3},
		{"1000u", 1e-3},
		{"10", 10},
		{"2.5meg", 2.5e6},
		{"1e3", 1000},
	}
	for _, tc := range cases {
		got, err := netlist.ParseValue(tc.in)
		require.NoError(t, err, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}

	_, err := netlist.ParseValue("k10")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	b := netlist.NewBuilder(netlist.DefaultOptions())
	b.Directive("* t")
	require.NoError(t, b.Wire(1, 2))
	b.Directive(".end")

	path := filepath.Join(t.TempDir(), "out.cir")
	require.NoError(t, b.WriteFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "* t\nr0 1 2 0k\n.end\n", string(content))
}

func TestWriteFile_IOError(t *testing.T) {
	b := netlist.NewBuilder(netlist.DefaultOptions())
	b.Directive(".end")

	err := b.WriteFile(filepath.Join(t.TempDir(), "missing", "out.cir"))
	require.ErrorIs(t, err, netlist.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist, "cause kept in the chain")
	assert.NotErrorIs(t, err, netlist.ErrInvalidTopology)
}
