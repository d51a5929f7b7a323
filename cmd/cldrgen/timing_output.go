package main

import (
	"fmt"
	"io"
	"time"

	"cldrgen/internal/pipeline"
)

func printStageTimings(out io.Writer, timings pipeline.Timings) {
	if out == nil {
		return
	}
	stages := []struct {
		stage pipeline.Stage
		label string
	}{
		{pipeline.StageDiscover, "discovered"},
		{pipeline.StageSupplemental, "loaded tables"},
		{pipeline.StageBuild, "built"},
		{pipeline.StageResolve, "resolved"},
		{pipeline.StageAssemble, "assembled"},
		{pipeline.StageEmit, "emitted"},
	}
	for _, s := range stages {
		if !timings.Has(s.stage) {
			continue
		}
		fmt.Fprintf(out, "%s %.1f ms\n", s.label, toMillis(timings.Duration(s.stage)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
