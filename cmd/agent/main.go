// Command agent runs the LLM bridge: a heartbeat loop drives the engine
// once per tick while a stdin REPL feeds user input, both sharing the
// engine under the agent's lock. Acts of awareness produce unprompted
// speech.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/bridge"
	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
	"github.com/danielpatrickdp/conscious-field/go-core/internal/journal"
)

// #region main

func main() {
	// .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg, err := bridge.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var jrnl *journal.Journal
	if cfg.JournalPath != "" {
		jrnl, err = journal.Open(cfg.JournalPath)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer jrnl.Close()
	}

	eng := engine.New(engine.PresetConfig(cfg.Preset), nil)
	client := bridge.NewOpenAIClient(cfg)
	agent := bridge.NewAgent(cfg, eng, client, jrnl)
	agent.OnSpeech = func(text string) {
		fmt.Printf("\n!!! ACT OF AWARENESS !!!\n%s: %s\n> ", cfg.Persona, text)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go agent.Heartbeat(ctx)

	fmt.Printf("%s online (model=%s endpoint=%s). Type your message, 'state' for a snapshot, 'quit' to exit.\n",
		cfg.Persona, cfg.Model, cfg.BaseURL)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if line == "state" {
			s := agent.Snapshot()
			fmt.Printf("t=%.0f pulse=%.2f att=%.2f echo=%d int=%+.2f dir=%+.2f acts=%d\n",
				s.Time, s.Pulse, s.AttentionLevel, s.EchoCount,
				s.InternalState, s.Direction, s.AwarenessTotal)
			continue
		}

		reply, err := agent.HandleInput(ctx, line)
		if err != nil {
			log.Printf("llm error: %v", err)
			continue
		}
		fmt.Printf("%s: %s\n", cfg.Persona, reply)
	}
}

// #endregion main
