package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"cldrgen/internal/assemble"
	"cldrgen/internal/model"
	"cldrgen/internal/pipeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] [locale-key]",
	Short: "Inspect the resolved locale graph without emitting",
	Long:  "Run the pipeline up to resolution and print the locale graph, or one locale in detail.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  inspectExecution,
}

func init() {
	inspectCmd.Flags().String("main", "", "directory of per-locale CLDR documents")
	inspectCmd.Flags().String("numbering-systems", "", "path to numberingSystems.xml")
	inspectCmd.Flags().String("supplemental", "", "path to supplementalData.xml")
	inspectCmd.Flags().String("iso639", "", "path to the ISO-639-2 code list (optional)")
	inspectCmd.Flags().Int("jobs", 0, "parallel build jobs (0 = GOMAXPROCS)")
}

func inspectExecution(cmd *cobra.Command, args []string) error {
	req, err := inspectRequestFromFlags(cmd)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	res, err := pipeline.Generate(cmd.Context(), req)
	printDiagnostics(cmd, res, quiet)
	if timings {
		printStageTimings(os.Stdout, res.Timings)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		return printLocaleDetail(out, res, args[0])
	}
	printModelSummary(out, res)
	return nil
}

// inspectRequestFromFlags builds a request with emission disabled.
func inspectRequestFromFlags(cmd *cobra.Command) (*pipeline.Request, error) {
	mainDir, err := cmd.Flags().GetString("main")
	if err != nil {
		return nil, err
	}
	numberingPath, err := cmd.Flags().GetString("numbering-systems")
	if err != nil {
		return nil, err
	}
	supplementalPath, err := cmd.Flags().GetString("supplemental")
	if err != nil {
		return nil, err
	}
	isoPath, err := cmd.Flags().GetString("iso639")
	if err != nil {
		return nil, err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	manifest, manifestFound, err := loadProjectManifest(".")
	if err != nil {
		return nil, err
	}
	if manifestFound {
		if mainDir == "" {
			mainDir = resolveManifestPath(manifest, manifest.Config.CLDR.Main)
		}
		if numberingPath == "" {
			numberingPath = resolveManifestPath(manifest, manifest.Config.CLDR.NumberingSystems)
		}
		if supplementalPath == "" {
			supplementalPath = resolveManifestPath(manifest, manifest.Config.CLDR.Supplemental)
		}
		if isoPath == "" {
			isoPath = resolveManifestPath(manifest, manifest.Config.CLDR.ISO639)
		}
	}
	if mainDir == "" || numberingPath == "" || supplementalPath == "" {
		if !manifestFound {
			return nil, fmt.Errorf("%s", noCldrgenTomlMessage)
		}
		return nil, fmt.Errorf("incomplete inputs: need --main, --numbering-systems, and --supplemental")
	}

	return &pipeline.Request{
		MainDir:              mainDir,
		NumberingSystemsPath: numberingPath,
		SupplementalPath:     supplementalPath,
		ISO639Path:           isoPath,
		MaxDiagnostics:       maxDiagnostics,
		Jobs:                 jobs,
	}, nil
}

func printModelSummary(out io.Writer, res pipeline.Result) {
	m := res.Model
	fmt.Fprintf(out, "locales: %d\n", len(m.Locales))
	fmt.Fprintf(out, "numbering systems: %d\n", len(m.NumberingSystems))
	fmt.Fprintf(out, "calendars: %d\n", len(m.Calendars))
	fmt.Fprintln(out)
	for _, r := range m.Locales {
		parent := r.Parent
		if parent == "" {
			parent = "(root)"
		}
		fmt.Fprintf(out, "  %-16s -> %s\n", r.Locale.Key(), parent)
	}
}

func printLocaleDetail(out io.Writer, res pipeline.Result, key string) error {
	r, ok := res.Model.LocaleByKey(key)
	if !ok {
		return fmt.Errorf("unknown locale %q", key)
	}
	loc := r.Locale

	fmt.Fprintf(out, "locale: %s\n", loc.Key())
	fmt.Fprintf(out, "bundle: %s\n", loc.BundleName)
	if r.Parent != "" {
		fmt.Fprintf(out, "parent: %s\n", r.Parent)
		fmt.Fprintf(out, "chain:  %s\n", formatChain(res.Model, key))
	} else {
		fmt.Fprintln(out, "parent: (root)")
	}
	if dns, ok := loc.DefaultNumberingSystem.Get(); ok {
		fmt.Fprintf(out, "default numbering system: %s\n", dns)
	}

	if len(loc.NumberSymbols) > 0 {
		fmt.Fprintln(out, "number symbols:")
		for _, id := range sortedSymbolIDs(loc.NumberSymbols) {
			sym := loc.NumberSymbols[id]
			if target, ok := sym.AliasOf.Get(); ok {
				fmt.Fprintf(out, "  %s: alias of %s\n", id, target)
				continue
			}
			fmt.Fprintf(out, "  %s: decimal=%s group=%s minus=%s\n",
				id, optRune(sym.Decimal), optRune(sym.Group), optRune(sym.Minus))
		}
	}

	if cal, ok := loc.Calendar.Get(); ok {
		fmt.Fprintf(out, "calendar: %d months, %d weekdays, %d eras\n",
			len(cal.MonthsWide), len(cal.WeekdaysWide), len(cal.Eras))
	}
	if pat, ok := loc.Patterns.Get(); ok {
		fmt.Fprintf(out, "patterns: %d date, %d time\n",
			len(pat.DateFormats), len(pat.TimeFormats))
	}
	return nil
}

func formatChain(m *assemble.Model, key string) string {
	chain := key
	for {
		r, ok := m.LocaleByKey(key)
		if !ok || r.Parent == "" {
			return chain
		}
		chain += " -> " + r.Parent
		key = r.Parent
	}
}

func sortedSymbolIDs(symbols map[string]model.NumberSymbols) []string {
	out := make([]string, 0, len(symbols))
	for id := range symbols {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func optRune(o model.Opt[rune]) string {
	if r, ok := o.Get(); ok {
		return string(r)
	}
	return "(unset)"
}
