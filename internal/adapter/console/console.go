// Package console reports a single probe as human-readable lines.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"dbprobe/internal/core/domain"
	"dbprobe/internal/core/ports"
)

// Run performs one probe and prints its outcome to out. The outcome is
// returned for logging only; callers must not turn it into an exit code.
func Run(ctx context.Context, out io.Writer, prober ports.Prober) domain.ProbeResult {
	fmt.Fprintf(out, "Connecting to %s...\n", prober.Target())

	result := prober.Probe(ctx)
	if !result.OK() {
		fmt.Fprintf(out, "❌ Connection failed: %s\n", result.Message)
		return result
	}

	fmt.Fprintln(out, "✅ Connection successful!")
	fmt.Fprintf(out, "Database version: %s\n", formatRow(result.Data))
	return result
}

func formatRow(row any) string {
	if row == nil {
		return "None"
	}
	b, err := json.Marshal(row)
	if err != nil {
		return fmt.Sprint(row)
	}
	return string(b)
}
