package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cfront/internal/driver"
	"cfront/internal/ui"
)

type batchOutcome struct {
	result *driver.BatchResult
	err    error
}

// runBatchWithUI runs TokenizeFiles while a Bubble Tea view follows its
// progress events on stderr.
func runBatchWithUI(ctx context.Context, title string, paths []string, opts driver.Options) (*driver.BatchResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.TokenizeFiles(ctx, osFs, paths, optsCopy)
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()

	// если UI закрылся раньше (Ctrl-C), дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()

	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
