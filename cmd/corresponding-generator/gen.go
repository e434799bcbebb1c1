package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"corresponding-generator/internal/gen"
)

const genLongDescription = `Generate the move and from routines of each package.

Each package receives one file (corresponding_gen.go unless configured
otherwise) replacing any previous one. Packages with fewer than two struct
declarations are left untouched.`

type genOptions struct {
	output   string
	comments bool
	dryRun   bool
	outDir   string
	debugDir string
}

func newGenCmd(root *rootOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate routines for the given packages",
		Long:  genLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.setup(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("output") {
				cfg.Output = opts.output
			}

			if cmd.Flags().Changed("comments") {
				cfg.Comments = opts.comments
			}

			if err := validate(cfg, log); err != nil {
				return err
			}

			scopes, err := loadScopes(cfg, resolvePatterns(cfg, args), log)
			if err != nil {
				return err
			}

			genCfg := cfg.GeneratorConfig()
			genCfg.DebugDir = opts.debugDir

			results, err := generateAll(cmd.Context(), scopes, cfg.PlanConfig(), genCfg, log)
			if err != nil {
				return err
			}

			var files []gen.GeneratedFile

			for _, res := range results {
				if len(res.Plan.Routines) == 0 {
					log.Info("nothing to generate", "scope", res.Plan.ScopeName)

					if _, err := os.Stat(gen.OutputPath(*res.File, opts.outDir)); err == nil {
						log.Warn("previously generated file left in place", "scope", res.Plan.ScopeName,
							"file", res.File.Filename)
					}

					continue
				}

				files = append(files, *res.File)
				log.Info("generated", "scope", res.Plan.ScopeName, "file", res.File.Filename,
					"routines", len(res.Plan.Routines))
			}

			if opts.outDir != "" && len(files) > 1 {
				return fmt.Errorf("--out-dir takes a single package, %d files would share %s",
					len(files), gen.OutputPath(files[0], opts.outDir))
			}

			if opts.dryRun {
				out := cmd.OutOrStdout()
				for _, f := range files {
					fmt.Fprintf(out, "// %s\n%s", gen.OutputPath(f, opts.outDir), f.Content)
				}

				return nil
			}

			return gen.WriteFiles(files, opts.outDir)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", gen.DefaultFilename, "name of the generated file (overrides config)")
	f.BoolVar(&opts.comments, "comments", false, "annotate each field action with its policy (overrides config)")
	f.BoolVarP(&opts.dryRun, "dry-run", "n", false, "print the generated files instead of writing them")
	f.StringVar(&opts.outDir, "out-dir", "", "write the file of a single package into this directory instead of the package directory")
	f.StringVar(&opts.debugDir, "debug-dir", "", "directory receiving unformatted output when formatting fails")

	return cmd
}
