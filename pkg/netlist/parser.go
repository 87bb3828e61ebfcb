package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NetlistData is a netlist read back from text.
type NetlistData struct {
	Title    string
	Elements []Element         // Circuit elements in file order
	Nodes    map[string]int    // Node name and first-seen index
	Models   map[string]string // Model name and type
	Ended    bool              // .end seen
}

type Element struct {
	Type   string            // R, C, E, D, V
	Name   string            // r0, e12, v1 ...
	Nodes  []string          // Node names
	Value  float64           // Part value
	Params map[string]string // model, gain, source type
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var (
	valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?s?$`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Parse reads a SPICE style netlist. The first line is the title.
func Parse(input string) (*NetlistData, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	netlistData := &NetlistData{
		Nodes:  make(map[string]int),
		Models: make(map[string]string),
	}

	// Title or comment
	if scanner.Scan() {
		netlistData.Title = strings.TrimPrefix(scanner.Text(), "*")
		netlistData.Title = strings.TrimSpace(netlistData.Title)
	}

	var currentLine string
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		// Strip trailing comments, skip comment lines
		if idx := strings.Index(line, "*"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
			if len(line) == 0 {
				continue
			}
		}

		// Line continue
		if strings.HasPrefix(line, "+") {
			if currentLine == "" {
				return nil, fmt.Errorf("line %d: continuation without element", lineNo)
			}
			currentLine += " " + strings.TrimSpace(line[1:])
			continue
		}

		if currentLine != "" {
			if err := parseLine(netlistData, currentLine); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo-1, err)
			}
		}
		currentLine = line
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading netlist: %w", err)
	}

	if currentLine != "" {
		if err := parseLine(netlistData, currentLine); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	return netlistData, nil
}

func parseLine(netlistData *NetlistData, line string) error {
	line = spaceRe.ReplaceAllString(line, " ")

	if netlistData.Ended {
		return fmt.Errorf("content after .end: %s", line)
	}

	if strings.HasPrefix(line, ".") {
		return parseDotOperator(netlistData, line)
	}

	element, err := parseElement(line)
	if err != nil {
		return err
	}

	netlistData.Elements = append(netlistData.Elements, *element)
	for _, node := range element.Nodes {
		if _, exists := netlistData.Nodes[node]; !exists {
			netlistData.Nodes[node] = len(netlistData.Nodes)
		}
	}
	return nil
}

// Parse .model, .end
func parseDotOperator(netlistData *NetlistData, line string) error {
	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case ".model":
		if len(fields) < 3 {
			return fmt.Errorf("insufficient model parameters")
		}
		modelType := strings.ToUpper(fields[2])
		if modelType != "D" {
			return fmt.Errorf("unsupported model type: %s", modelType)
		}
		netlistData.Models[fields[1]] = modelType

	case ".end":
		netlistData.Ended = true

	default:
		return fmt.Errorf("unsupported dot command: %s", fields[0])
	}

	return nil
}

func parseElement(line string) (*Element, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, fmt.Errorf("invalid element format: %s", line)
	}

	elem := &Element{
		Name:   fields[0],
		Type:   strings.ToUpper(string(fields[0][0])),
		Params: make(map[string]string),
	}

	switch elem.Type {
	case "V":
		// v1 <node> dc <value>
		if len(fields) != 4 || strings.ToLower(fields[2]) != "dc" {
			return nil, fmt.Errorf("voltage source %s: want <node> dc <value>", elem.Name)
		}
		value, err := ParseValue(fields[3])
		if err != nil {
			return nil, err
		}
		elem.Nodes = []string{fields[1]}
		elem.Value = value
		elem.Params["type"] = "dc"

	case "D":
		if len(fields) != 4 {
			return nil, fmt.Errorf("diode %s: want <anode> <cathode> <model>", elem.Name)
		}
		elem.Nodes = fields[1:3]
		elem.Params["model"] = fields[3]

	case "E":
		// e<seq> out 0 in+ in- gain
		if len(fields) != 6 {
			return nil, fmt.Errorf("amplifier %s: want <out> 0 <in+> <in-> <gain>", elem.Name)
		}
		gain, err := ParseValue(fields[5])
		if err != nil {
			return nil, err
		}
		elem.Nodes = fields[1:5]
		elem.Value = gain
		elem.Params["gain"] = fields[5]

	case "R", "C":
		if len(fields) != 4 {
			return nil, fmt.Errorf("element %s: want <n1> <n2> <value>", elem.Name)
		}
		value, err := ParseValue(fields[3])
		if err != nil {
			return nil, err
		}
		elem.Nodes = fields[1:3]
		elem.Value = value

	default:
		return nil, fmt.Errorf("unsupported element: %s", elem.Name)
	}

	return elem, nil
}

// ParseValue - Parse value and factor. 1k -> 1000
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	// factor
	if len(matches) > 2 && matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}

// Seq is the per-kind instance number taken from the element name.
func (e Element) Seq() (int, error) {
	if len(e.Name) < 2 {
		return 0, fmt.Errorf("element %q has no sequence number", e.Name)
	}
	return strconv.Atoi(e.Name[1:])
}

// Count returns the number of elements of the given type letter.
func (d *NetlistData) Count(typ string) int {
	n := 0
	for _, e := range d.Elements {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// Check verifies the bookkeeping of a generated netlist: per-kind sequence
// numbers run 0, 1, 2 ... in file order, no amplifier or source drives
// ground, diode models are defined, and the netlist is terminated.
func (d *NetlistData) Check() error {
	next := map[string]int{}
	for _, e := range d.Elements {
		if e.Type == "V" {
			if e.Nodes[0] == "0" {
				return fmt.Errorf("%w: source %s drives ground", ErrInvalidTopology, e.Name)
			}
			continue
		}
		seq, err := e.Seq()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTopology, err)
		}
		if seq != next[e.Type] {
			return fmt.Errorf("%w: %s out of sequence, want %s%d", ErrInvalidTopology, e.Name, strings.ToLower(e.Type), next[e.Type])
		}
		next[e.Type]++

		switch e.Type {
		case "E":
			if e.Nodes[0] == "0" {
				return fmt.Errorf("%w: amplifier %s drives ground", ErrInvalidTopology, e.Name)
			}
		case "D":
			if _, ok := d.Models[e.Params["model"]]; !ok {
				return fmt.Errorf("%w: diode %s uses undefined model %s", ErrInvalidTopology, e.Name, e.Params["model"])
			}
		}
	}
	if !d.Ended {
		return fmt.Errorf("%w: missing .end", ErrInvalidTopology)
	}
	return nil
}
