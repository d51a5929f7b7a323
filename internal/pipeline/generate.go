// Package pipeline drives a full generation run: discover locale files,
// load the shared supplemental tables, build per-locale records in
// parallel, resolve inheritance, assemble the model, and emit it.
//
// Semantics are batch-or-nothing: the first fatal error aborts the whole
// run. Downstream consumers assume a complete, internally consistent
// locale graph, so partial output is never an acceptable artifact.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"cldrgen/internal/assemble"
	"cldrgen/internal/build"
	"cldrgen/internal/cldrxml"
	"cldrgen/internal/diag"
	"cldrgen/internal/emit"
	"cldrgen/internal/model"
	"cldrgen/internal/observ"
	"cldrgen/internal/source"
	"cldrgen/internal/supplemental"
)

// Request configures one generation run.
type Request struct {
	// MainDir holds one XML document per locale.
	MainDir string
	// NumberingSystemsPath is the numbering-systems supplemental document.
	NumberingSystemsPath string
	// SupplementalPath is the supplemental-data document (calendars,
	// territory codes, parent-locale overrides).
	SupplementalPath string
	// ISO639Path is the pipe-delimited ISO-639-2 code list. Optional;
	// empty means no cross-referencing.
	ISO639Path string

	// OutputPath is where the emitter writes. Empty disables emission
	// (used by inspect).
	OutputPath string
	// GoPackage is the package clause for the go backend.
	GoPackage string
	Backend   Backend

	MaxDiagnostics int
	Jobs           int
	Sink           ProgressSink
	Timer          *observ.Timer
}

// Result carries the assembled model and everything needed to report on
// the run.
type Result struct {
	Model   *assemble.Model
	FileSet *source.FileSet
	Bag     *diag.Bag
	Files   []string // display paths, one per locale document
	Timings Timings
}

// localeResult is the per-document outcome of the build stage. Indices are
// goroutine-unique, so no mutex guards the slice.
type localeResult struct {
	Path   string
	Locale *model.Locale
	Bag    *diag.Bag
}

// Generate runs the whole pipeline.
func Generate(ctx context.Context, req *Request) (Result, error) {
	res := Result{Bag: diag.NewBag(maxDiag(req))}
	sink := req.Sink
	if sink == nil {
		sink = NopSink{}
	}
	timer := req.Timer
	if timer == nil {
		timer = observ.NewTimer()
	}

	// discover
	phase := timer.Begin(string(StageDiscover))
	start := time.Now()
	files, err := source.ListXMLFiles(req.MainDir)
	if err != nil {
		return res, err
	}
	if len(files) == 0 {
		return res, fmt.Errorf("no locale documents under %s", req.MainDir)
	}
	fileSet := source.NewFileSetWithBase(req.MainDir)
	res.FileSet = fileSet
	res.Files = displayPaths(files, req.MainDir)
	for _, path := range res.Files {
		sink.OnEvent(Event{File: path, Stage: StageBuild, Status: StatusQueued})
	}
	timer.End(phase, fmt.Sprintf("%d locale documents", len(files)))
	res.Timings.Set(StageDiscover, time.Since(start))

	// supplemental tables, fully loaded before any locale is built
	phase = timer.Begin(string(StageSupplemental))
	start = time.Now()
	sink.OnEvent(Event{Stage: StageSupplemental, Status: StatusWorking})
	corpus, err := loadShared(fileSet, req, res.Bag)
	if err != nil {
		sink.OnEvent(Event{Stage: StageSupplemental, Status: StatusError, Err: err})
		return res, err
	}
	timer.End(phase, "")
	res.Timings.Set(StageSupplemental, time.Since(start))

	// per-locale build, embarrassingly parallel: every document reads only
	// itself plus the already-loaded shared tables
	phase = timer.Begin(string(StageBuild))
	start = time.Now()
	results, err := buildLocales(ctx, fileSet, files, res.Files, corpus.Systems, req, sink)
	for i := range results {
		if results[i].Bag != nil {
			res.Bag.Merge(results[i].Bag)
		}
	}
	res.Bag.Sort()
	if err != nil {
		return res, err
	}
	for i := range results {
		corpus.Locales = append(corpus.Locales, results[i].Locale)
	}
	timer.End(phase, "")
	res.Timings.Set(StageBuild, time.Since(start))

	// resolve; the tree check needs the full corpus
	phase = timer.Begin(string(StageResolve))
	start = time.Now()
	sink.OnEvent(Event{Stage: StageResolve, Status: StatusWorking})
	resolved, err := assemble.Resolve(*corpus, diag.BagReporter{Bag: res.Bag})
	if err != nil {
		res.Bag.Sort()
		sink.OnEvent(Event{Stage: StageResolve, Status: StatusError, Err: err})
		return res, err
	}
	timer.End(phase, fmt.Sprintf("%d locales", len(resolved)))
	res.Timings.Set(StageResolve, time.Since(start))

	// assemble
	phase = timer.Begin(string(StageAssemble))
	start = time.Now()
	sink.OnEvent(Event{Stage: StageAssemble, Status: StatusWorking})
	res.Model = assemble.Build(*corpus, resolved)
	timer.End(phase, "")
	res.Timings.Set(StageAssemble, time.Since(start))

	if req.OutputPath == "" {
		sink.OnEvent(Event{Stage: StageAssemble, Status: StatusDone})
		return res, nil
	}

	// emit
	phase = timer.Begin(string(StageEmit))
	start = time.Now()
	sink.OnEvent(Event{Stage: StageEmit, Status: StatusWorking})
	emitter, err := newEmitter(req)
	if err != nil {
		return res, err
	}
	if err := emitter.Emit(res.Model); err != nil {
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOWriteError,
			Message:  err.Error(),
		})
		sink.OnEvent(Event{Stage: StageEmit, Status: StatusError, Err: err})
		return res, err
	}
	sink.OnEvent(Event{Stage: StageEmit, Status: StatusDone})
	timer.End(phase, req.OutputPath)
	res.Timings.Set(StageEmit, time.Since(start))

	return res, nil
}

func maxDiag(req *Request) int {
	if req.MaxDiagnostics <= 0 {
		return 100
	}
	return req.MaxDiagnostics
}

// loadShared loads the corpus-wide tables: numbering systems, supplemental
// data, and the optional ISO-639-2 list.
func loadShared(fileSet *source.FileSet, req *Request, bag *diag.Bag) (*assemble.Corpus, error) {
	reporter := diag.BagReporter{Bag: bag}

	systems, err := loadNumberingSystems(fileSet, req.NumberingSystemsPath, reporter)
	if err != nil {
		return nil, err
	}

	supp, err := loadSupplementalData(fileSet, req.SupplementalPath, reporter)
	if err != nil {
		return nil, err
	}

	iso := map[string]supplemental.ISO639Entry{}
	if req.ISO639Path != "" {
		iso, err = loadISO639(fileSet, req.ISO639Path, reporter)
		if err != nil {
			return nil, err
		}
	}

	return &assemble.Corpus{Systems: systems, Supp: supp, ISO639: iso}, nil
}

func loadNumberingSystems(fileSet *source.FileSet, path string, reporter diag.Reporter) (map[string]model.NumberingSystem, error) {
	id, err := fileSet.Load(path)
	if err != nil {
		err = fmt.Errorf("numbering systems: %w", err)
		diag.ReportError(reporter, diag.BuildSupplementalMissing, source.Span{}, err.Error())
		return nil, err
	}
	doc, err := cldrxml.Parse(fileSet.Get(id))
	if err != nil {
		return nil, err
	}
	return supplemental.NumberingSystems(doc, reporter)
}

func loadSupplementalData(fileSet *source.FileSet, path string, reporter diag.Reporter) (*supplemental.Data, error) {
	id, err := fileSet.Load(path)
	if err != nil {
		err = fmt.Errorf("supplemental data: %w", err)
		diag.ReportError(reporter, diag.BuildSupplementalMissing, source.Span{}, err.Error())
		return nil, err
	}
	doc, err := cldrxml.Parse(fileSet.Get(id))
	if err != nil {
		return nil, err
	}
	return supplemental.ParseData(doc), nil
}

func loadISO639(fileSet *source.FileSet, path string, reporter diag.Reporter) (map[string]supplemental.ISO639Entry, error) {
	id, err := fileSet.Load(path)
	if err != nil {
		err = fmt.Errorf("iso-639-2 code list: %w", err)
		diag.ReportError(reporter, diag.BuildSupplementalMissing, source.Span{}, err.Error())
		return nil, err
	}
	f := fileSet.Get(id)
	return supplemental.ParseISO639(bytes.NewReader(f.Content), f.ID, reporter)
}

// buildLocales parses and builds every locale document in parallel.
// Documents are preloaded sequentially (the FileSet is not safe for
// concurrent writes); record building runs under an errgroup with a job
// limit. Result indices are unique per goroutine.
func buildLocales(ctx context.Context, fileSet *source.FileSet, files, display []string, systems map[string]model.NumberingSystem, req *Request, sink ProgressSink) ([]localeResult, error) {
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]localeResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range files {
		g.Go(func(i int) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				name := display[i]
				sink.OnEvent(Event{File: name, Stage: StageBuild, Status: StatusWorking})
				startedAt := time.Now()

				bag := diag.NewBag(maxDiag(req))
				results[i] = localeResult{Path: name, Bag: bag}

				if loadErrors[i] != nil {
					err := fmt.Errorf("failed to load locale document: %w", loadErrors[i])
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  err.Error(),
					})
					sink.OnEvent(Event{File: name, Stage: StageBuild, Status: StatusError, Err: err})
					return err
				}

				file := fileSet.Get(fileIDs[i])
				doc, err := cldrxml.Parse(file)
				if err != nil {
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.XMLSyntaxError,
						Message:  err.Error(),
						Primary:  source.Span{File: file.ID},
					})
					sink.OnEvent(Event{File: name, Stage: StageBuild, Status: StatusError, Err: err})
					return err
				}

				loc, err := build.Locale(file, doc, systems, diag.BagReporter{Bag: bag})
				if err != nil {
					sink.OnEvent(Event{File: name, Stage: StageBuild, Status: StatusError, Err: err})
					return err
				}

				results[i].Locale = loc
				sink.OnEvent(Event{File: name, Stage: StageBuild, Status: StatusDone, Elapsed: time.Since(startedAt)})
				return nil
			}
		}(i))
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func newEmitter(req *Request) (emit.Emitter, error) {
	switch req.Backend {
	case BackendGo:
		pkg := req.GoPackage
		if pkg == "" {
			pkg = "locale"
		}
		return emit.NewGoSource(req.OutputPath, pkg), nil
	case BackendMsgpack:
		return emit.NewMsgpack(req.OutputPath), nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s (supported: go, msgpack)", req.Backend)
	}
}

func displayPaths(files []string, baseDir string) []string {
	out := make([]string, len(files))
	for i, path := range files {
		rel, err := source.RelativePath(path, baseDir)
		if err != nil {
			rel = path
		}
		out[i] = rel
	}
	return out
}
