package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cldrgen/internal/diag"
	"cldrgen/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "Generate locale tables from a CLDR release",
	Long:  "Generate locale tables from CLDR locale documents, using cldrgen.toml for input locations when present.",
	Args:  cobra.NoArgs,
	RunE:  generateExecution,
}

func init() {
	generateCmd.Flags().String("main", "", "directory of per-locale CLDR documents")
	generateCmd.Flags().String("numbering-systems", "", "path to numberingSystems.xml")
	generateCmd.Flags().String("supplemental", "", "path to supplementalData.xml")
	generateCmd.Flags().String("iso639", "", "path to the ISO-639-2 code list (optional)")
	generateCmd.Flags().String("out", "", "output path for the emitted tables")
	generateCmd.Flags().String("backend", string(pipeline.BackendGo), "output backend (go, msgpack)")
	generateCmd.Flags().String("package", "locale", "package name for the go backend")
	generateCmd.Flags().Int("jobs", 0, "parallel build jobs (0 = GOMAXPROCS)")
	generateCmd.Flags().String("ui", "auto", "user interface (auto|on|off)")
}

func generateExecution(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}
	if req.OutputPath == "" {
		return errors.New("missing output path: set --out or [output].path in cldrgen.toml")
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
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

	var res pipeline.Result
	if shouldUseTUI(uiModeValue) {
		res, err = runGenerateWithUI(cmd.Context(), "cldrgen generate", req)
	} else {
		res, err = pipeline.Generate(cmd.Context(), req)
	}

	printDiagnostics(cmd, res, quiet)
	if timings {
		printStageTimings(os.Stdout, res.Timings)
	}
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "generated %s (%d locales)\n",
			formatPathForOutput(req.OutputPath), len(res.Model.Locales))
	}
	return nil
}

// requestFromFlags assembles a pipeline request from flags, falling back to
// cldrgen.toml for anything not set on the command line. Flags win.
func requestFromFlags(cmd *cobra.Command) (*pipeline.Request, error) {
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
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return nil, err
	}
	backendValue, err := cmd.Flags().GetString("backend")
	if err != nil {
		return nil, err
	}
	pkgName, err := cmd.Flags().GetString("package")
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
		if outPath == "" {
			outPath = resolveManifestPath(manifest, manifest.Config.Output.Path)
		}
		if !cmd.Flags().Changed("backend") && manifest.Config.Output.Backend != "" {
			backendValue = manifest.Config.Output.Backend
		}
		if !cmd.Flags().Changed("package") && manifest.Config.Output.Package != "" {
			pkgName = manifest.Config.Output.Package
		}
	}

	if mainDir == "" || numberingPath == "" || supplementalPath == "" {
		if !manifestFound {
			return nil, errors.New(noCldrgenTomlMessage)
		}
		return nil, errors.New("incomplete inputs: need --main, --numbering-systems, and --supplemental")
	}
	if backendValue != string(pipeline.BackendGo) && backendValue != string(pipeline.BackendMsgpack) {
		return nil, fmt.Errorf("unsupported backend: %s (supported: go, msgpack)", backendValue)
	}

	return &pipeline.Request{
		MainDir:              mainDir,
		NumberingSystemsPath: numberingPath,
		SupplementalPath:     supplementalPath,
		ISO639Path:           isoPath,
		OutputPath:           outPath,
		GoPackage:            pkgName,
		Backend:              pipeline.Backend(backendValue),
		MaxDiagnostics:       maxDiagnostics,
		Jobs:                 jobs,
	}, nil
}

func printDiagnostics(cmd *cobra.Command, res pipeline.Result, quiet bool) {
	if res.Bag == nil || res.Bag.Len() == 0 {
		return
	}
	if quiet && !res.Bag.HasErrors() {
		return
	}
	out := diag.FormatShort(res.Bag.Items(), res.FileSet, true)
	if out != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), out)
	}
}

func formatPathForOutput(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
