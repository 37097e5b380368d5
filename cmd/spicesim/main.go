// Command spicesim runs AC and/or transient analysis over a netlist
// file and writes the result as CSV (or JSON for TRAN, with -json).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	gospice "github.com/edp1096sim/gospice"
	"github.com/edp1096sim/gospice/pkg/analysis"
	"github.com/edp1096sim/gospice/pkg/netlist"
	"github.com/edp1096sim/gospice/pkg/result"
)

func main() {
	netlistPath := flag.String("netlist", "", "path to the netlist file (required)")
	outJSON := flag.Bool("json", false, "write TRAN output as JSON instead of CSV")
	flag.Parse()

	if *netlistPath == "" {
		fmt.Fprintln(os.Stderr, "usage: spicesim -netlist <file> [-json]")
		os.Exit(2)
	}

	text, err := os.ReadFile(*netlistPath)
	if err != nil {
		log.Fatalf("reading netlist: %v", err)
	}

	parsed, err := netlist.Parse(string(text))
	if err != nil {
		log.Fatalf("parsing netlist: %v", err)
	}

	if acResult, err := gospiceRunAC(parsed); err != nil {
		log.Fatalf("ac analysis: %v", err)
	} else if acResult != nil {
		if err := result.WriteAcCSV(os.Stdout, acResult); err != nil {
			log.Fatalf("writing ac result: %v", err)
		}
	}

	tranResult, err := gospice.RunTRAN(parsed.Circuit, parsed.TRAN, parsed.Probes)
	if err != nil {
		log.Fatalf("tran analysis: %v", err)
	}
	if tranResult != nil {
		if err := writeTran(tranResult, *outJSON); err != nil {
			log.Fatalf("writing tran result: %v", err)
		}
	}
}

func gospiceRunAC(parsed *netlist.ParseResult) (*analysis.AcResult, error) {
	return gospice.RunAC(parsed.Circuit, parsed.AC)
}

func writeTran(r *analysis.TranResult, asJSON bool) error {
	if asJSON {
		return result.WriteTranJSON(os.Stdout, r)
	}
	return result.WriteTranCSV(os.Stdout, r)
}
