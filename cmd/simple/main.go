package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/lakefield/dayroll"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[dayroll]
  level = -4 # Debug
  name = "app"
  directory = "./simple_logs"
  extension = "log"
  default_target = "Simple"
  enable_console = true
  console_target = "stdout"
  enable_file = true
  enable_color = true
`

func main() {
	fmt.Println("--- Simple Engine Example ---")

	// Create dummy config file
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := dayroll.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = dayroll.DefaultConfig()
	}

	// Startup rotation runs here: stale content from an earlier day is
	// archived before the first line is appended
	if err := dayroll.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Engine initialized.")

	dayroll.Debug("This is a debug message.", "user_id", 123)
	dayroll.Info("Application starting...")
	dayroll.Warn("Potential issue detected.", "threshold", 0.95)
	dayroll.Error("An error occurred!", "code", 500)

	// Scoped loggers carry their own name into the [logger] column
	startup := dayroll.Named("Startup")
	startup.Info("components wired")

	// Logging from goroutines; rotation checks are serialized internally
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			dayroll.Info("Goroutine started", "id", id)
			dayroll.Info("Goroutine finished", "id", id)
		}(i)
	}
	wg.Wait()

	if err := dayroll.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Engine shutdown error: %v\n", err)
	}

	fmt.Println("--- Example Finished ---")
	fmt.Println("Check log files in './simple_logs'.")
}
