package main

import (
	"fmt"
	"os"

	"shiftbook.com.au/shiftbook/punch/core"
	"shiftbook.com.au/shiftbook/punch/export"
	"shiftbook.com.au/shiftbook/punch/ingest"
)

// processfile runs the full pipeline locally, no database involved:
// punch document in, shift workbook out.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: processfile <punchfile> [output.xlsx]")
		os.Exit(1)
	}

	inPath := os.Args[1]
	outPath := inPath + ".shifts.xlsx"
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	records, err := ingest.File(inPath, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Parsed %d punches\n", len(records))

	shifts := core.Reconcile(records)
	fmt.Printf("Reconciled %d shift rows\n", len(shifts))

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := export.Write(shifts, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", outPath)
}
