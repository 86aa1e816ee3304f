// Command simulator runs the field engine interactively in the console.
//
// Field mode: an empty line means attention is on the field this step; any
// text turns attention off. Process mode: each line (number or word) is fed
// to the engine as an external signal; an empty line means no input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
	"github.com/danielpatrickdp/conscious-field/go-core/internal/journal"
	"github.com/danielpatrickdp/conscious-field/go-core/internal/mood"
)

// #region main

func main() {
	mode := flag.String("mode", "field", "simulation mode: field | process")
	preset := flag.String("preset", "default", "engine preset: default | orion | calm")
	journalPath := flag.String("journal", "", "optional SQLite journal path")
	flag.Parse()

	if *mode != "field" && *mode != "process" {
		fmt.Fprintln(os.Stderr, "usage: simulator [-mode field|process] [-preset default|orion|calm] [-journal path]")
		os.Exit(2)
	}

	var jrnl *journal.Journal
	if *journalPath != "" {
		var err error
		jrnl, err = journal.Open(*journalPath)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer jrnl.Close()
	}

	eng := engine.New(engine.PresetConfig(*preset), nil)

	fmt.Printf("=== Conscious Field Simulator (%s mode, %s preset) ===\n", *mode, *preset)
	if *mode == "field" {
		fmt.Println("Enter = attention ON, any text = attention OFF, q = quit")
		runFieldMode(eng, jrnl)
	} else {
		fmt.Println("Enter a signal (number or word), empty = none, q = quit")
		runProcessMode(eng, jrnl)
	}
}

// #endregion main

// #region field-mode

func runFieldMode(eng *engine.Engine, jrnl *journal.Journal) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("[field] attention? ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			return
		}

		s := eng.Step(engine.Stimulus{}, line == "")
		record(jrnl, s)
		fmt.Println(mood.RenderField(s))
	}
}

// #endregion field-mode

// #region process-mode

func runProcessMode(eng *engine.Engine, jrnl *journal.Journal) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("[process] signal? ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			return
		}

		s := eng.Step(parseStimulus(line), false)
		record(jrnl, s)
		fmt.Println(mood.RenderProcess(s))
	}
}

// parseStimulus interprets a line as a number when possible, text otherwise.
func parseStimulus(line string) engine.Stimulus {
	if line == "" {
		return engine.Stimulus{}
	}
	if v, err := strconv.ParseFloat(line, 64); err == nil {
		return engine.Number(v)
	}
	return engine.Text(line)
}

// #endregion process-mode

// #region helpers

func record(jrnl *journal.Journal, s engine.Snapshot) {
	if jrnl == nil {
		return
	}
	if err := jrnl.Record("simulator", s); err != nil {
		log.Printf("journal error: %v", err)
	}
}

// #endregion helpers
