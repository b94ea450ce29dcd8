package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	seed := flag.Int64("seed", 0, "piece sequence seed (0 picks one from the clock)")
	flag.Parse()
	if err := EnableDebugLogging(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
	}
	defer CloseDebugLog()
	DebugLogf("tetlris start debug=%v seed=%d", *debug, *seed)

	config, err := loadConfig()
	if err != nil {
		DebugLogf("config load error: %v", err)
	}
	config = applyEnvOverrides(config)

	program := tea.NewProgram(NewModel(config, *seed), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		DebugLogf("program error: %v", err)
		CloseDebugLog()
		os.Exit(1)
	}
}
