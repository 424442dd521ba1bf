package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.design/x/hotkey"

	"github.com/nrundek/duxburyInfo/internal/config"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Register global hotkeys for the status report gestures",
	Long: `Register the configured global hotkeys and run until interrupted.
Each press triggers the matching report: full status, line only, page
only, or one of the two debug scans. The full status report is doubly
bound so the laptop keyboard-layout convention keeps working.

Combos are read from the bindings section of the config file.`,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
}

// gestureBinding ties one hotkey combo to a report operation.
type gestureBinding struct {
	combo string
	name  string
	run   func()
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
		cfg = config.Default()
	}

	r, _ := newReporter(false)

	bindings := []gestureBinding{
		{cfg.Bindings.Status, "status", r.FullStatus},
		{cfg.Bindings.StatusAlt, "status", r.FullStatus},
		{cfg.Bindings.Line, "line", r.LineOnly},
		{cfg.Bindings.Page, "page", r.PageOnly},
		{cfg.Bindings.Candidates, "candidates", func() { r.DebugCandidates() }},
		{cfg.Bindings.Scan, "scan", func() { r.DebugScanSummary() }},
	}

	triggers := make(chan gestureBinding)
	go dispatchGestures(triggers)

	var registered []*hotkey.Hotkey
	for _, b := range bindings {
		if b.combo == "" {
			continue
		}
		mods, key, err := parseHotkey(b.combo)
		if err != nil {
			return err
		}
		hk := hotkey.New(mods, key)
		if err := hk.Register(); err != nil {
			return fmt.Errorf("register %s for %s: %w", b.combo, b.name, err)
		}
		registered = append(registered, hk)
		log.Printf("hotkey: %s registered for %s", b.combo, b.name)

		go forwardGesture(hk, b, triggers)
	}
	if len(registered) == 0 {
		return fmt.Errorf("no hotkey bindings configured")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	for _, hk := range registered {
		if err := hk.Unregister(); err != nil {
			log.Printf("hotkey: unregister failed: %v", err)
		}
	}
	return nil
}

// forwardGesture funnels every keydown onto the dispatch channel. The
// send blocks while a report is running, so each hotkey queues at most
// one pending press.
func forwardGesture(hk *hotkey.Hotkey, b gestureBinding, triggers chan<- gestureBinding) {
	for range hk.Keydown() {
		triggers <- b
	}
}

// dispatchGestures runs reports one at a time on a single goroutine.
// All bindings share one reporter and speaker, so presses from
// different hotkeys must never run concurrently.
func dispatchGestures(triggers <-chan gestureBinding) {
	for b := range triggers {
		log.Printf("hotkey: %s triggered (%s)", b.combo, b.name)
		b.run()
	}
}

// parseHotkey parses a combo string like "ctrl+alt+s" into
// golang.design/x/hotkey modifiers and key.

var modMap = map[string]hotkey.Modifier{
	"ctrl":    hotkey.ModCtrl,
	"control": hotkey.ModCtrl,
	"shift":   hotkey.ModShift,
	"alt":     modAlt,
	"option":  modAlt,
}

var keyMap = map[string]hotkey.Key{
	"space":  hotkey.KeySpace,
	"tab":    hotkey.KeyTab,
	"return": hotkey.KeyReturn,
	"enter":  hotkey.KeyReturn,
	"a":      hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"f1": hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
}

func parseHotkey(combo string) ([]hotkey.Modifier, hotkey.Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(combo)), "+")
	if len(parts) < 2 {
		return nil, 0, fmt.Errorf("invalid hotkey %q: need at least one modifier", combo)
	}
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]

	key, ok := keyMap[keyPart]
	if !ok {
		return nil, 0, fmt.Errorf("invalid hotkey %q: unknown key %q", combo, keyPart)
	}

	var mods []hotkey.Modifier
	seen := map[string]bool{}
	for _, m := range modParts {
		if seen[m] {
			continue
		}
		seen[m] = true
		mod, ok := modMap[m]
		if !ok {
			return nil, 0, fmt.Errorf("invalid hotkey %q: unknown modifier %q", combo, m)
		}
		mods = append(mods, mod)
	}
	return mods, key, nil
}
