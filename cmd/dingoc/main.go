// Package main implements dingoc, the host CLI for the CFG simplifier and
// import resolver: `simplify` runs the fixed-point block rewriter over a
// YAML function fixture, `resolve` runs the fixed-point import resolver
// over a txtar module-tree fixture, and both accept --watch to re-run
// whenever their input changes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MadAppGang/dingoc/pkg/cfg"
	"github.com/MadAppGang/dingoc/pkg/config"
	"github.com/MadAppGang/dingoc/pkg/diag"
	"github.com/MadAppGang/dingoc/pkg/fixture"
	"github.com/MadAppGang/dingoc/pkg/resolve"
	"github.com/MadAppGang/dingoc/pkg/ui"
	"github.com/MadAppGang/dingoc/pkg/watch"
)

var version = "0.1.0-alpha"

func main() {
	rootCmd := &cobra.Command{
		Use:          "dingoc",
		Short:        "dingoc - CFG simplifier and import resolver",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(simplifyCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dingoc version",
		Run: func(cmd *cobra.Command, args []string) {
			ui.PrintVersionInfo(version)
		},
	}
}

func simplifyCmd() *cobra.Command {
	var watchFlag bool
	var labelFlag string

	cmd := &cobra.Command{
		Use:   "simplify <file.cfg.yaml>",
		Short: "Run the CFG simplifier over a YAML function fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func() error { return runSimplify(args[0], labelFlag) }
			if !watchFlag {
				return run()
			}
			return watchUntilInterrupted(args[0], run)
		},
	}

	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-run whenever the input file changes")
	cmd.Flags().StringVar(&labelFlag, "label", "", "Pass disambiguator label (overrides config)")

	return cmd
}

func resolveCmd() *cobra.Command {
	var watchFlag bool
	var reportUnused bool

	cmd := &cobra.Command{
		Use:   "resolve <archive.txtar>",
		Short: "Run the import resolver over a txtar module-tree fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func() error { return runResolve(args[0], reportUnused) }
			if !watchFlag {
				return run()
			}
			return watchUntilInterrupted(args[0], run)
		},
	}

	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-run whenever the input archive changes")
	cmd.Flags().BoolVar(&reportUnused, "report-unused", false, "Report unused imports and extern crates (overrides config)")

	return cmd
}

func watchUntilInterrupted(path string, run func() error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ui.PrintInfo(fmt.Sprintf("watching %s for changes (ctrl-c to stop)", path))
	return watch.Run(ctx, path, run, func(err error) {
		ui.PrintError(err.Error())
	})
}

func runSimplify(path string, labelOverride string) error {
	cfgFile, err := config.Load(&config.Config{Simplify: config.SimplifyConfig{Label: labelOverride}})
	if err != nil {
		return err
	}

	ui.PrintHeader(version)
	ui.PrintFilePath("Input", path)

	parseStart := time.Now()
	fn, err := fixture.LoadCFG(path)
	parseDuration := time.Since(parseStart)
	if err != nil {
		ui.PrintStep(ui.Step{Name: "Parse", Status: ui.StepError, Duration: parseDuration})
		return err
	}
	ui.PrintStep(ui.Step{Name: "Parse", Status: ui.StepSuccess, Duration: parseDuration})

	before, err := fixture.DumpCFG(fn)
	if err != nil {
		return err
	}

	if !cfgFile.Simplify.Enabled {
		ui.PrintStep(ui.Step{Name: "Simplify", Status: ui.StepWarning, Message: "disabled by configuration"})
		printBlocks("Blocks", before)
		ui.PrintSummary(true, "pass disabled, function printed unchanged")
		return nil
	}

	label := cfgFile.Simplify.Label
	simplifyStart := time.Now()
	cfg.NewSimplifyCfg(label).Run(fn)
	simplifyDuration := time.Since(simplifyStart)
	ui.PrintStep(ui.Step{Name: "Simplify", Status: ui.StepSuccess, Duration: simplifyDuration, Message: fmt.Sprintf("label=%s", label)})

	after, err := fixture.DumpCFG(fn)
	if err != nil {
		return err
	}

	printBlocks("Before", before)
	printBlocks("After", after)
	ui.PrintSummary(true, fmt.Sprintf("%d block(s) before, %d after", len(before.Blocks), len(after.Blocks)))

	return nil
}

func printBlocks(title string, doc fixture.CFGDoc) {
	ui.Section(title + ":")
	rows := make([][2]string, len(doc.Blocks))
	for i, b := range doc.Blocks {
		rows[i] = [2]string{cfg.BlockID(i).String(), fmt.Sprintf("%v -> %s", b.Statements, b.Terminator.Kind)}
	}
	fmt.Println(ui.Table(rows))
}

func runResolve(path string, reportUnusedOverride bool) error {
	cfgFile, err := config.Load(&config.Config{
		Simplify: config.SimplifyConfig{Label: "default"},
		Resolve:  config.ResolveConfig{ReportUnusedImports: reportUnusedOverride, ReportUnusedExternCrates: reportUnusedOverride},
	})
	if err != nil {
		return err
	}

	ui.PrintHeader(version)
	ui.PrintFilePath("Archive", path)

	parseStart := time.Now()
	tree, err := fixture.LoadModuleTree(path)
	parseDuration := time.Since(parseStart)
	if err != nil {
		ui.PrintStep(ui.Step{Name: "Parse", Status: ui.StepError, Duration: parseDuration})
		return err
	}
	ui.PrintStep(ui.Step{Name: "Parse", Status: ui.StepSuccess, Duration: parseDuration})

	r := resolve.NewResolver(tree.Root, tree.Interner)
	r.ResolveModulePath = tree.ResolveModulePath
	r.UnresolvedImports = countImportDirectives(tree.Root)

	resolveStart := time.Now()
	resolve.ResolveImports(r)
	resolveDuration := time.Since(resolveStart)

	status := ui.StepSuccess
	if r.Sink.Len() > 0 || r.UnresolvedImports > 0 {
		status = ui.StepWarning
	}
	ui.PrintStep(ui.Step{Name: "Resolve", Status: status, Duration: resolveDuration})

	for _, d := range r.Sink.All() {
		fmt.Print(diag.Render(d))
	}

	if r.UnresolvedImports == 0 && cfgFile.Resolve.ReportUnusedImports {
		reportUnusedImports(r, tree)
	}
	if r.UnresolvedImports == 0 && cfgFile.Resolve.ReportUnusedExternCrates {
		reportUnusedExternCrates(r, tree)
	}

	if r.UnresolvedImports > 0 || r.Sink.Len() > 0 {
		ui.PrintSummary(false, fmt.Sprintf("%d unresolved import(s), %d diagnostic(s)", r.UnresolvedImports, r.Sink.Len()))
		return fmt.Errorf("resolve: %d unresolved import(s)", r.UnresolvedImports)
	}

	ui.PrintSummary(true, "all imports resolved")
	return nil
}

// countImportDirectives seeds Resolver.UnresolvedImports: the host
// normally tracks this incrementally as directives are parsed, but the
// fixture loader hands back a whole tree at once, so the CLI counts it
// up front by the same subtree walk the driver itself uses.
func countImportDirectives(module *resolve.Module) int {
	n := len(module.Imports())
	for _, nsDef := range module.Children() {
		if child, ok := nsDef.Module(); ok {
			n += countImportDirectives(child)
		}
	}
	for _, child := range module.AnonymousChildren() {
		n += countImportDirectives(child)
	}
	return n
}

func reportUnusedImports(r *resolve.Resolver, tree *fixture.ModuleTree) {
	walkModules(tree.Root, func(m *resolve.Module) {
		for _, d := range r.UnusedImports(m) {
			ui.PrintWarning(fmt.Sprintf("unused import at %s:%d", d.Span.Filename, d.Span.Line))
		}
	})
}

func reportUnusedExternCrates(r *resolve.Resolver, tree *fixture.ModuleTree) {
	for _, m := range r.UnusedExternCrates() {
		ui.PrintWarning(fmt.Sprintf("unused extern crate `%s`", m.Name))
	}
}

func walkModules(module *resolve.Module, visit func(*resolve.Module)) {
	visit(module)
	for _, nsDef := range module.Children() {
		if child, ok := nsDef.Module(); ok {
			walkModules(child, visit)
		}
	}
	for _, child := range module.AnonymousChildren() {
		walkModules(child, visit)
	}
}
