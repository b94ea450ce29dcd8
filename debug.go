package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hiromasa5450/tetlris/internal/tetris"
)

var (
	debugEnabled bool
	debugMu      sync.Mutex
	debugFile    *os.File
)

func debugLogPath() string {
	return filepath.Join(os.TempDir(), "tetlris-debug.log")
}

// EnableDebugLogging routes the standard logger to a file so the alt screen
// is never written to. Disabled logging discards everything.
func EnableDebugLogging(enabled bool) error {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = enabled
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if debugFile != nil {
		return nil
	}
	file, err := tea.LogToFile(debugLogPath(), "tetlris")
	if err != nil {
		debugEnabled = false
		return err
	}
	debugFile = file
	return nil
}

func CloseDebugLog() {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugFile != nil {
		_ = debugFile.Close()
		debugFile = nil
	}
}

func DebugLogf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	message := fmt.Sprintf(format, args...)
	log.Print(strings.ReplaceAll(message, "\n", " "))
}

func debugListener() tetris.Listener {
	return tetris.ListenerFuncs{
		OnScoreChanged: func(score int) { DebugLogf("score changed: %d", score) },
		OnGameOver:     func() { DebugLogf("game over") },
	}
}
