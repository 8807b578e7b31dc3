package main

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/costcocr/costcocr/internal/codes"
	"github.com/costcocr/costcocr/internal/receipt"
	"github.com/costcocr/costcocr/internal/render"
	"github.com/costcocr/costcocr/internal/scanning"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("costcocr")
	var (
		writerName   = fs.StringLong("writer", "csv", "Output writer: "+strings.Join(render.Writers(), ", "))
		varsFlag     = fs.StringLong("vars", "", "Comma-separated key=value variables passed to the writer (values cannot contain commas)")
		taxRateFlag  = fs.StringLong("tax-rate", "0", "Fractional tax rate for items marked taxable (e.g. 0.0875)")
		resolveCodes = fs.BoolLong("codes", "Resolve register codes to item names with the built-in dictionary")
		cutoffFlag   = fs.StringLong("cutoff", "", "Similarity cutoff for code resolution, 0 to 1 (default 0.6)")
		store        = fs.StringLong("store", "", "Store name for the receipt metadata")
		date         = fs.StringLong("date", "", "Purchase date for the receipt metadata")
		location     = fs.StringLong("location", "", "Store location for the receipt metadata")
		showVersion  = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("COSTCOCR"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Check version flag after parsing
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	taxRate, err := strconv.ParseFloat(*taxRateFlag, 64)
	if err != nil {
		slog.Error("Invalid tax rate", "value", *taxRateFlag, "error", err)
		os.Exit(1)
	}

	vars, err := parseVars(*varsFlag)
	if err != nil {
		slog.Error("Invalid writer variables", "value", *varsFlag, "error", err)
		os.Exit(1)
	}

	text, err := readInput(fs.GetArgs())
	if err != nil {
		slog.Error("Failed to read input", "error", err)
		os.Exit(1)
	}

	items := scanning.Parse(text, scanning.Options{TaxRate: taxRate})
	slog.Info("Parsed OCR text", "items", len(items))

	if *resolveCodes {
		cutoff := codes.DefaultCutoff
		if *cutoffFlag != "" {
			cutoff, err = strconv.ParseFloat(*cutoffFlag, 64)
			if err != nil {
				slog.Error("Invalid cutoff", "value", *cutoffFlag, "error", err)
				os.Exit(1)
			}
		}
		dict := codes.New(codes.Costco, cutoff)
		for i, item := range items {
			if name, ok := dict.Lookup(item.Name); ok {
				items[i].Name = name
			}
		}
	}

	meta := receipt.Meta{}
	if *store != "" {
		meta[receipt.MetaStore] = *store
	}
	if *date != "" {
		meta[receipt.MetaDate] = *date
	}
	if *location != "" {
		meta[receipt.MetaLocation] = *location
	}

	out, err := render.Write(*writerName, vars, receipt.New(meta, items))
	if err != nil {
		slog.Error("Failed to render receipt", "writer", *writerName, "error", err)
		os.Exit(1)
	}

	fmt.Println(out)
}

// readInput reads the OCR text from the file named by the first positional
// argument, or from stdin when no argument (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// parseVars parses "key=value,key=value" into a map. Values cannot contain
// commas; only the first "=" in a pair separates key from value.
func parseVars(s string) (map[string]string, error) {
	vars := map[string]string{}
	if s == "" {
		return vars, nil
	}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("malformed variable %q, want key=value", pair)
		}
		vars[k] = v
	}
	return vars, nil
}
