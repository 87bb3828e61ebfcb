package main // import "github.com/edp1096/bias-netlist/cmd"

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/edp1096/bias-netlist/pkg/circuit"
	"github.com/edp1096/bias-netlist/pkg/netlist"
)

func printSummary(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", netlist.ErrIO, err)
	}
	data, err := netlist.Parse(string(content))
	if err != nil {
		return fmt.Errorf("reading back %s: %w", path, err)
	}
	if err := data.Check(); err != nil {
		return err
	}

	fmt.Printf("\nNetlist %s\n", path)
	fmt.Println("================")
	fmt.Printf("Title: %s\n", data.Title)
	fmt.Printf("Nodes: %d\n", len(data.Nodes))
	fmt.Printf("Resistors:  %d\n", data.Count("R"))
	fmt.Printf("Capacitors: %d\n", data.Count("C"))
	fmt.Printf("Amplifiers: %d\n", data.Count("E"))
	fmt.Printf("Diodes:     %d\n", data.Count("D"))
	fmt.Printf("Sources:    %d\n", data.Count("V"))
	return nil
}

func main() {
	cfg := circuit.DefaultConfig()

	flag.IntVar(&cfg.Neurons, "n", cfg.Neurons, "grid size, number of neurons")
	flag.Float64Var(&cfg.Resistance, "r", cfg.Resistance, "resistor value (k)")
	flag.Float64Var(&cfg.Capacitance, "c", cfg.Capacitance, "hold capacitor value (u)")
	flag.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "global threshold source (V)")
	flag.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals of rendered values, -1 for shortest")
	flag.BoolVar(&cfg.DualAxonDrive, "dual-axon", cfg.DualAxonDrive, "wire the hold loop into the axon alongside the direct path")
	flag.BoolVar(&cfg.ShadowedDiffInput, "shadowed-input", cfg.ShadowedDiffInput, "feed the threshold subtractor from the shadowed source node")
	output := flag.String("o", "netlist.cir", "output netlist file")
	check := flag.Bool("check", false, "read the written netlist back and print a summary")
	verbose := flag.Bool("v", false, "print progress per neuron")
	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatal("Usage: genet [flags]")
	}

	ckt, err := circuit.New(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *verbose {
		ckt.SetLogger(log.New(os.Stderr, "genet: ", log.LstdFlags))
	}

	if err := ckt.Synthesize(); err != nil {
		log.Fatalf("Netlist synthesis failed: %v", err)
	}

	if err := ckt.WriteFile(*output); err != nil {
		log.Fatalf("Error writing netlist file: %v", err)
	}
	if *verbose {
		log.Printf("wrote %s, id %s", *output, ckt.DesignID())
	}

	if *check {
		if err := printSummary(*output); err != nil {
			log.Fatalf("Check failed: %v", err)
		}
	}
}
