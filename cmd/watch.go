package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the status pipeline and stream position changes as JSONL",
	Long: `Continuously run the scan pipeline and emit a JSON line whenever the
parsed page/line/column changes. No output is emitted while the
position is stable.

Output is always JSONL regardless of the --format flag.

Use Ctrl+C or --duration to stop watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 1000, "Polling interval in milliseconds")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")

	r, _ := newReporter(true)

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	interval := time.Duration(intervalMs) * time.Millisecond
	var deadline time.Time
	if durationSec > 0 {
		deadline = time.Now().Add(time.Duration(durationSec) * time.Second)
	}
	start := time.Now()

	_, prev := r.Scan()
	enc.Encode(map[string]interface{}{
		"type":   "snapshot",
		"ts":     time.Now().Unix(),
		"status": prev,
	})

	eventCount := 0
	for {
		if durationSec > 0 && time.Now().After(deadline) {
			break
		}

		time.Sleep(interval)

		_, curr := r.Scan()
		if curr != prev {
			enc.Encode(map[string]interface{}{
				"type":   "status",
				"ts":     time.Now().Unix(),
				"status": curr,
			})
			eventCount++
			prev = curr
		}
	}

	elapsed := time.Since(start)
	enc.Encode(map[string]interface{}{
		"type":    "done",
		"ts":      time.Now().Unix(),
		"elapsed": fmt.Sprintf("%.1fs", elapsed.Seconds()),
		"events":  eventCount,
	})

	return nil
}
