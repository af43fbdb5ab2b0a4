package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/schemly/schemly/gen"
	"github.com/schemly/schemly/load"
)

// kindFlags holds one boolean per artifact kind, reused for both the
// --only-* and --no-* flag families.
type kindFlags struct {
	models      bool
	migrations  bool
	controllers bool
	resources   bool
	factories   bool
	dtos        bool
	pivotTables bool
}

func (f kindFlags) any() bool {
	return f != kindFlags{}
}

func (f kindFlags) all() bool {
	return f == kindFlags{true, true, true, true, true, true, true}
}

type options struct {
	configPath string
	output     string
	force      bool
	ddd        bool
	noDDD      bool
	watch      bool
	workers    int
	only       kindFlags
	no         kindFlags
}

const longHelp = `Generate Laravel models, controllers, resources, factories,
migrations, DTOs and pivot tables from a YAML schema document.

Examples:
  schemly --config models.yml                  Generate all artifact kinds
  schemly --config models.yml --only-models    Generate only models
  schemly --config models.yml --force          Overwrite existing files
  schemly --config models.yml --watch          Regenerate on schema changes

Existing files are never overwritten unless --force is set.
Environment variables with the SCHEMLY_ prefix override matching flags
(e.g. SCHEMLY_OUTPUT, SCHEMLY_FORCE).`

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "schemly",
		Short:         "Generate Laravel scaffolding from a YAML schema",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output = viper.GetString("output")
			opts.force = viper.GetBool("force")
			return run(cmd.Context(), &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to the YAML schema document")
	flags.StringVarP(&opts.output, "output", "o", ".", "Laravel project root directory")
	flags.BoolVar(&opts.force, "force", false, "overwrite existing files")
	flags.BoolVar(&opts.ddd, "ddd", false, "use the domain-grouped folder structure")
	flags.BoolVar(&opts.noDDD, "no-ddd", false, "use the traditional Laravel folder structure")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "watch the schema document and regenerate on change")
	flags.IntVar(&opts.workers, "workers", 0, "parallel generation workers (0 = number of CPUs)")

	flags.BoolVar(&opts.no.models, "no-models", false, "skip model generation")
	flags.BoolVar(&opts.no.migrations, "no-migrations", false, "skip migration generation")
	flags.BoolVar(&opts.no.controllers, "no-controllers", false, "skip controller generation")
	flags.BoolVar(&opts.no.resources, "no-resources", false, "skip resource generation")
	flags.BoolVar(&opts.no.factories, "no-factories", false, "skip factory generation")
	flags.BoolVar(&opts.no.dtos, "no-dto", false, "skip DTO generation")
	flags.BoolVar(&opts.no.pivotTables, "no-pivot-tables", false, "skip pivot table generation")

	flags.BoolVar(&opts.only.models, "only-models", false, "generate only models")
	flags.BoolVar(&opts.only.migrations, "only-migrations", false, "generate only migrations")
	flags.BoolVar(&opts.only.controllers, "only-controllers", false, "generate only controllers")
	flags.BoolVar(&opts.only.resources, "only-resources", false, "generate only resources")
	flags.BoolVar(&opts.only.factories, "only-factories", false, "generate only factories")
	flags.BoolVar(&opts.only.dtos, "only-dto", false, "generate only DTOs")
	flags.BoolVar(&opts.only.pivotTables, "only-pivot-tables", false, "generate only pivot tables")

	_ = cmd.MarkFlagRequired("config")

	viper.SetEnvPrefix("schemly")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("force", flags.Lookup("force"))

	return cmd
}

func run(ctx context.Context, opts *options) error {
	if err := validateFlags(opts); err != nil {
		return err
	}

	if opts.force {
		color.Yellow("Warning: --force enabled, existing files will be overwritten")
	}

	if opts.watch {
		return watch(ctx, opts)
	}
	return generate(ctx, opts)
}

func validateFlags(opts *options) error {
	if opts.ddd && opts.noDDD {
		return fmt.Errorf("cannot use both --ddd and --no-ddd")
	}
	if !opts.only.any() && opts.no.all() {
		return fmt.Errorf("at least one artifact kind must be enabled")
	}
	return nil
}

// generate runs one full generation pass from the schema document.
func generate(ctx context.Context, opts *options) error {
	cfg, err := load.File(opts.configPath)
	if err != nil {
		return err
	}
	applyOptions(cfg, opts)

	stats, err := gen.NewRunner(cfg).Run(ctx)
	if err != nil {
		return err
	}
	report(stats)
	if stats.Failed > 0 {
		return fmt.Errorf("%d artifacts failed to generate", stats.Failed)
	}
	return nil
}

// applyOptions layers CLI flags over the loaded document config.
// --only-* flags select an exact artifact set; otherwise --no-* flags
// subtract from what the document enabled.
func applyOptions(cfg *gen.Config, opts *options) {
	cfg.OutputDir = opts.output
	cfg.ForceOverwrite = opts.force
	cfg.Workers = opts.workers

	if opts.ddd {
		cfg.UseDDD = true
	} else if opts.noDDD {
		cfg.UseDDD = false
	}

	if opts.only.any() {
		cfg.Generate = gen.GenerateSet{
			Models:      opts.only.models,
			Migrations:  opts.only.migrations,
			Controllers: opts.only.controllers,
			Resources:   opts.only.resources,
			Factories:   opts.only.factories,
			DTOs:        opts.only.dtos,
			PivotTables: opts.only.pivotTables,
		}
		return
	}
	cfg.Generate.Models = cfg.Generate.Models && !opts.no.models
	cfg.Generate.Migrations = cfg.Generate.Migrations && !opts.no.migrations
	cfg.Generate.Controllers = cfg.Generate.Controllers && !opts.no.controllers
	cfg.Generate.Resources = cfg.Generate.Resources && !opts.no.resources
	cfg.Generate.Factories = cfg.Generate.Factories && !opts.no.factories
	cfg.Generate.DTOs = cfg.Generate.DTOs && !opts.no.dtos
	cfg.Generate.PivotTables = cfg.Generate.PivotTables && !opts.no.pivotTables
}

// watch regenerates whenever the schema document changes, until the
// context is cancelled.
func watch(ctx context.Context, opts *options) error {
	if err := generate(ctx, opts); err != nil {
		color.Red("generation failed: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save,
	// which drops a watch placed on the file itself.
	target := filepath.Clean(opts.configPath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	color.Cyan("Watching %s for changes...", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			color.Cyan("Schema changed, regenerating...")
			if err := generate(ctx, opts); err != nil {
				color.Red("generation failed: %v", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return werr
		}
	}
}

// report prints per-artifact outcomes and the run summary.
func report(stats *gen.Stats) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, res := range stats.Results {
		switch res.Status {
		case gen.Written:
			fmt.Printf("%s generated %s\n", green("✓"), res.Artifact)
		case gen.Skipped:
			fmt.Printf("%s skipped %s (already exists: %s)\n", yellow("⚠"), res.Artifact, res.Path)
		case gen.Failed:
			fmt.Printf("%s failed %s: %v\n", red("✗"), res.Artifact, res.Err)
		}
	}

	fmt.Println("\nSummary:")
	if stats.Written > 0 {
		fmt.Printf("  %s %d files generated\n", green("✓"), stats.Written)
	}
	if stats.Skipped > 0 {
		fmt.Printf("  %s %d files skipped (already exist)\n", yellow("⚠"), stats.Skipped)
	}
	if stats.Failed > 0 {
		fmt.Printf("  %s %d files failed\n", red("✗"), stats.Failed)
	}
	fmt.Printf("  Total: %d files processed\n", stats.Total())
}
