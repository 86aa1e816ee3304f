// Command inspect queries a step journal database.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/journal"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the step journal database")
	last := flag.Int("last", 20, "show N most recent steps")
	reason := flag.String("reason", "", "filter to one reason")
	counts := flag.Bool("counts", false, "show per-reason counts instead of rows")
	jsonOut := flag.Bool("json", false, "output as JSON instead of a table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/field.db [--last N] [--reason r] [--counts] [--json]")
		os.Exit(2)
	}

	jrnl, err := journal.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer jrnl.Close()

	if *counts {
		if err := runCounts(jrnl, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runList(jrnl, *last, *reason, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	StepID    string  `json:"step_id"`
	Source    string  `json:"source"`
	Time      float64 `json:"time"`
	Pulse     float64 `json:"pulse"`
	Internal  float64 `json:"internal_state"`
	External  float64 `json:"external_signal"`
	Direction float64 `json:"direction"`
	Reason    string  `json:"reason"`
	Awareness bool    `json:"act_of_awareness"`
	Total     int     `json:"awareness_total"`
}

func runList(jrnl *journal.Journal, last int, reason string, jsonOut bool) error {
	var entries []journal.Entry
	var err error
	if reason != "" {
		entries, err = jrnl.ByReason(reason, last)
	} else {
		entries, err = jrnl.Recent(last)
	}
	if err != nil {
		return err
	}

	rows := make([]listRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, listRow{
			StepID:    e.StepID,
			Source:    e.Source,
			Time:      e.Snapshot.Time,
			Pulse:     e.Snapshot.Pulse,
			Internal:  e.Snapshot.InternalState,
			External:  e.Snapshot.ExternalSignal,
			Direction: e.Snapshot.Direction,
			Reason:    string(e.Snapshot.Reason),
			Awareness: e.Snapshot.ActOfAwareness,
			Total:     e.Snapshot.AwarenessTotal,
		})
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%-10s %-9s %6s %6s %8s %8s %8s %-28s %s\n",
		"STEP", "SOURCE", "T", "PULSE", "INT", "EXT", "DIR", "REASON", "TOTAL")
	for _, r := range rows {
		id := r.StepID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("%-10s %-9s %6.0f %6.2f %+8.2f %+8.2f %+8.2f %-28s %d\n",
			id, r.Source, r.Time, r.Pulse, r.Internal, r.External, r.Direction, r.Reason, r.Total)
	}
	return nil
}

// #endregion list-mode

// #region counts-mode

func runCounts(jrnl *journal.Journal, jsonOut bool) error {
	counts, err := jrnl.CountByReason()
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}

	for reason, n := range counts {
		fmt.Printf("%-28s %d\n", reason, n)
	}
	return nil
}

// #endregion counts-mode
