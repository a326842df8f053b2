// Package telemetry emits gated JSONL events describing agent activity.
//
// Events land in .agent/events.jsonl when observation is enabled, either via
// the WXA_OBSERVE_JSON environment variable (explicit 0/1 wins) or the
// config-supplied default. Emission failures are reported on stderr and never
// interrupt the turn.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

var defaultObserve atomic.Bool

// SetDefaultObserve sets the fallback observation state used when
// WXA_OBSERVE_JSON is unset. Called once from config wiring at startup.
func SetDefaultObserve(on bool) {
	defaultObserve.Store(on)
}

// Enabled reports whether JSONL emission is on. An explicit WXA_OBSERVE_JSON
// value of "0" or "1" overrides the config default.
func Enabled() bool {
	if v, ok := os.LookupEnv("WXA_OBSERVE_JSON"); ok {
		return v == "1"
	}
	return defaultObserve.Load()
}

// Emit writes a single JSON line to .agent/events.jsonl when enabled.
// It augments fields with RFC3339Nano time and the event name.
func Emit(name string, fields map[string]any) {
	if !Enabled() {
		return
	}

	// Shallow copy so callers' maps aren't mutated.
	m := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		m[k] = v
	}
	m["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["event"] = name

	b, err := json.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: marshal: %v\n", err)
		return
	}

	dir := ".agent"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: mkdir %s: %v\n", dir, err)
		return
	}

	path := filepath.Join(dir, "events.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(b, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: write %s: %v\n", path, err)
	}
}
