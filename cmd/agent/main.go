package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/meteomark/weather-agent/internal/config"
	"github.com/meteomark/weather-agent/internal/history"
	"github.com/meteomark/weather-agent/internal/provider"
	"github.com/meteomark/weather-agent/internal/runner"
	"github.com/meteomark/weather-agent/internal/telemetry"
	"github.com/meteomark/weather-agent/tools"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the agent YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr, cfg.LogLevel)
	telemetry.SetDefaultObserve(cfg.ObserveJSON)

	// Basic env check (SDK also reads the key)
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	client := provider.NewAnthropicClient()
	r := runner.New(client, cfg, tools.Registry())
	log := &history.Log{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	// One-shot mode: a single utterance on the command line runs one turn
	// and prints the final assistant message.
	if flag.NArg() > 0 {
		question := strings.Join(flag.Args(), " ")
		reply, err := r.RunTurn(ctx, log, question)
		if err != nil {
			logger.Error("turn failed", "err", err)
			os.Exit(1)
		}
		fmt.Println(reply)
		return
	}

	logger.Debug("starting interactive session", "model", cfg.Model)
	repl(ctx, r, log)
}

// repl loops user turns until stdin closes or the context is cancelled.
func repl(ctx context.Context, r *runner.Runner, log *history.Log) {
	fmt.Println("Ask about the weather (Ctrl-C to quit)")

	// stdin reader goroutine -> lines into channel
	scanner := bufio.NewScanner(os.Stdin)
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

	for {
		fmt.Print("[94mYou[0m: ")
		var (
			user string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return
		case user, ok = <-inputCh:
			if !ok {
				if err := scanner.Err(); err != nil {
					fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
				}
				return
			}
		}
		if strings.TrimSpace(user) == "" {
			continue
		}

		reply, err := r.RunTurn(ctx, log, user)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("[93mAgent[0m: %s\n", reply)
	}
}

func defaultConfigPath() string {
	if p := os.Getenv("WXA_CONFIG"); p != "" {
		return p
	}
	return "agent.yaml"
}
