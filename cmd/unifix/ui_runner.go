package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"unifix/internal/driver"
	"unifix/internal/source"
	"unifix/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []*driver.FileResult
	err     error
}

// runCheckDirWithUI runs the directory scan behind a Bubble Tea progress
// view. Сканер работает в горутине и шлёт события в канал; после выхода из
// UI результаты рендерятся обычным способом.
func runCheckDirWithUI(ctx context.Context, dir string, opts driver.Options, jobs int) (*source.FileSet, []*driver.FileResult, error) {
	files, err := driver.ListTargets(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		fs, results, err := driver.CheckDir(ctx, dir, opts, jobs, driver.ChannelSink{Ch: events})
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewScanModel(fmt.Sprintf("checking %s", dir), files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
