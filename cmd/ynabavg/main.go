package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/yurifrl/ynabavg/pkg/config"
	"github.com/yurifrl/ynabavg/pkg/executors"
	"github.com/yurifrl/ynabavg/pkg/parser"
	"github.com/yurifrl/ynabavg/pkg/render"
	"github.com/yurifrl/ynabavg/pkg/ynab"
)

type options struct {
	cfgFile string
	jsonOut bool
	asOf    string
	file    string
	debug   bool
	now     func() time.Time
	logsTo  io.Writer
}

func newRootCmd() *cobra.Command {
	opts := &options{now: time.Now, logsTo: os.Stderr}

	cmd := &cobra.Command{
		Use:   "ynabavg [flags] [months...]",
		Short: "Average monthly spending per YNAB category",
		Long: `Reports the average amount spent per month in every category over the
trailing N full months, ending with the previous month. Several month
counts can be given at once; transactions are fetched only once.`,
		Example: `  ynabavg            # last 12 months
  ynabavg 1 3 12 --json
  ynabavg 6 --file register.csv --as-of 2024-07-01`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	flags.BoolVar(&opts.jsonOut, "json", false, "Print JSON instead of text (same as --output json)")
	flags.StringP("output", "o", config.OutputText, "Output format: text, json or yaml")
	flags.String("by", config.CategoryKeyName, "Key categories by name or id")
	flags.StringVar(&opts.asOf, "as-of", "", "Reference date (YYYY-MM-DD); windows end with the month before it")
	flags.StringVarP(&opts.file, "file", "f", "", "Read a YNAB register CSV export instead of calling the API")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging and dump the computed reports")
	cmd.MarkFlagsMutuallyExclusive("json", "output")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	level := log.InfoLevel
	if opts.debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(opts.logsTo, log.Options{
		ReportTimestamp: true,
		Prefix:          "ynabavg",
		Level:           level,
	})

	months, err := parseMonths(args)
	if err != nil {
		return err
	}
	now, err := referenceDate(opts.asOf, opts.now)
	if err != nil {
		return err
	}

	// Load configuration (config file + env + flag overrides)
	cfg, err := config.Build(opts.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if opts.jsonOut {
		cfg.Output = config.OutputJSON
	}
	if err := cfg.Validate(opts.file == ""); err != nil {
		return err
	}

	var source executors.Source
	if opts.file != "" {
		logger.Debug("reading register export", "file", opts.file)
		source = parser.NewFileSource(opts.file, parser.New(logger, cfg.CSVDateFormat))
	} else {
		source = ynab.NewSource(ynab.New(cfg.APIToken, logger), cfg.BudgetID)
	}

	exec := executors.New(logger, source, cfg.ResolveNames())
	reports, err := exec.Run(now, months)
	if err != nil {
		return err
	}

	if opts.debug {
		printer := pp.New()
		printer.SetOutput(opts.logsTo)
		printer.Println(reports)
	}

	return render.Write(cmd.OutOrStdout(), render.Format(cfg.Output), reports)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
