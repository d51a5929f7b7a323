package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cldrgen/internal/pipeline"
	"cldrgen/internal/source"
	"cldrgen/internal/ui"
)

type generateOutcome struct {
	result pipeline.Result
	err    error
}

func runGenerateWithUI(ctx context.Context, title string, req *pipeline.Request) (pipeline.Result, error) {
	if req == nil {
		return pipeline.Result{}, fmt.Errorf("missing generate request")
	}

	// the UI needs the file list before the pipeline reports it
	files, err := source.ListXMLFiles(req.MainDir)
	if err != nil {
		return pipeline.Result{}, err
	}
	display := make([]string, len(files))
	for i, path := range files {
		rel, relErr := source.RelativePath(path, req.MainDir)
		if relErr != nil {
			rel = path
		}
		display[i] = rel
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan generateOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Sink = pipeline.ChannelSink{Ch: events}
		res, genErr := pipeline.Generate(ctx, &reqCopy)
		outcomeCh <- generateOutcome{result: res, err: genErr}
		close(events)
	}()

	model := ui.NewProgressModel(title, display, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
