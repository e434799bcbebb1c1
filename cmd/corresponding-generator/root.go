package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corresponding-generator/internal/config"
	"corresponding-generator/internal/logger"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
	wrapper    string
	marker     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "corresponding-generator",
		Short: "Generate field-moving routines between the structs of a package",
		Long: `corresponding-generator pairs every struct declaration of a package with
every other one and generates, for each ordered pair, a method moving the
fields with the same name and a compatible type:

  func (lhs *L) MoveFromR(rhs R)

Structs whose doc comment carries the default marker also get

  func LFromR(rhs R) (lhs L)

Fields wrapped in the optional wrapper (Option[T] by default) are unwrapped
or wrapped as needed, and an absent value never overwrites a target field.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", config.DefaultFilename, "configuration file, ignored when missing")
	pf.StringVar(&opts.logLevel, "log-level", string(logger.InfoLevel), "log level: debug, info, warn or error")
	pf.BoolVar(&opts.logJSON, "log-json", false, "log as JSON")
	pf.StringVar(&opts.wrapper, "wrapper", "", "identifier of the optional wrapper type (overrides config)")
	pf.StringVar(&opts.marker, "marker", "", "doc comment directive marking default-constructible structs (overrides config)")

	cmd.AddCommand(newGenCmd(opts))
	cmd.AddCommand(newExplainCmd(opts))

	return cmd
}

// setup builds the logger and loads, overrides and validates the
// configuration.
func (o *rootOptions) setup(cmd *cobra.Command) (*config.File, logger.Logger, error) {
	level, err := logger.ParseLevel(o.logLevel)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		JSON:   o.logJSON,
	})

	cfg, found, err := config.LoadOptional(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	if found {
		log.Debug("loaded config", "path", o.configPath)
	}

	if cmd.Flags().Changed("wrapper") {
		cfg.OptionalWrapper = o.wrapper
	}

	if cmd.Flags().Changed("marker") {
		cfg.DefaultMarker = o.marker
	}

	return cfg, log, nil
}

// validate logs configuration warnings and fails on errors.
func validate(cfg *config.File, log logger.Logger) error {
	diags := config.Validate(cfg)
	for _, w := range diags.Warnings {
		log.Warn(w.Message, "code", w.Code)
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
