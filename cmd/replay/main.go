// Command replay runs a JSON fixture through a fresh engine and, when the
// fixture carries expectations, compares the outcomes. Exit code 1 on any
// mismatch.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/mood"
	"github.com/danielpatrickdp/conscious-field/go-core/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print every step")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if fixture.Description != "" {
		fmt.Printf("Fixture: %s\n", fixture.Description)
	}
	fmt.Printf("Seed: %d, steps: %d\n\n", fixture.Seed, len(fixture.Steps))

	results := replay.Run(fixture, nil)

	if *verbose {
		for _, s := range results {
			fmt.Println(mood.RenderProcess(s))
		}
		fmt.Println()
	}

	summary := replay.Summarize(results)
	fmt.Printf("Steps: %d, acts of awareness: %d\n", summary.Steps, summary.Acts)
	for reason, n := range summary.ByReason {
		fmt.Printf("  %-28s %d\n", reason, n)
	}

	mismatches := replay.Compare(results, fixture.Expected)
	if len(mismatches) > 0 {
		fmt.Printf("\nFAIL: %d mismatches\n", len(mismatches))
		for _, m := range mismatches {
			fmt.Printf("  %s\n", m)
		}
		os.Exit(1)
	}
	if len(fixture.Expected) > 0 {
		fmt.Println("\nPASS: all expectations matched")
	}
}

// #endregion main
