// FILE: example/uihook/main.go
package main

import (
	"fmt"
	"strings"

	"github.com/lakefield/dayroll"
)

// Demonstrates the host UI surface: every formatted line is mirrored to a
// callback in addition to console and file sinks, and UI-originated events
// carry their own logger name via the embedded separator.
func main() {
	logger := dayroll.NewLogger()
	err := logger.ApplyConfigString(
		"directory=./uihook_logs",
		"level=trace",
		"default_target=Host",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	var mirrored []string
	logger.SetUIHook(func(line string) {
		mirrored = append(mirrored, line)
	})

	logger.Info("backend event, named by the default target")

	// A frontend event embeds its logger name before the separator; the
	// formatter reports it with the Frontend origin
	logger.Info("LoginView\x1fuser clicked sign-in")

	fmt.Printf("UI hook captured %d lines:\n", len(mirrored))
	fmt.Print(strings.Join(mirrored, ""))
}
