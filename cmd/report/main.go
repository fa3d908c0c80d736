package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-insights/infrastructure/dataset/csvfile"
	"github.com/vfg2006/sales-insights/infrastructure/dataset/remote"
	"github.com/vfg2006/sales-insights/internal/charting"
	"github.com/vfg2006/sales-insights/internal/config"
	"github.com/vfg2006/sales-insights/internal/reporter"
	"github.com/vfg2006/sales-insights/internal/usecases/aggregating"
	"github.com/vfg2006/sales-insights/internal/usecases/reporting"
	"github.com/vfg2006/sales-insights/pkg/log"
	"github.com/vfg2006/sales-insights/pkg/utils"
)

// smoke.csv tem receita mensal exatamente linear: 100, 200, ..., 500
//
//go:embed smoke.csv
var smokeDataset []byte

const (
	smokeMonths    = 5
	smokeSlope     = 100.0
	smokeIntercept = 100.0
	smokeTolerance = 1e-9

	fetchTimeout = 30 * time.Second
)

type options struct {
	file     string
	json     bool
	preview  int
	check    bool
	logLevel string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	if _, err := log.Configure(stderr, opts.logLevel); err != nil {
		fmt.Fprintf(stderr, "warning: %v, using info\n", err)
	}

	if opts.check {
		err = runCheck(stdout)
	} else {
		err = runReport(ctx, opts, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	flags := pflag.NewFlagSet("report", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.file, "file", "f", "monthly_product_sales.csv", "CSV dataset (path or http(s) URL) with Product, Category, Month, Units_Sold and Revenue columns")
	flags.BoolVar(&opts.json, "json", false, "also print the chart dashboard as JSON")
	flags.IntVarP(&opts.preview, "preview", "n", 5, "number of records shown in the data preview")
	flags.BoolVar(&opts.check, "check", false, "build a report from an embedded linear dataset and verify the fitted trend")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return opts, flags.Parse(args)
}

func runReport(ctx context.Context, opts options, stdout io.Writer) error {
	cfg := &config.Config{
		Dataset: config.Dataset{
			Paths:              []string{opts.file},
			MaxConcurrentLoads: 1,
			FetchTimeout:       fetchTimeout,
		},
		Report: config.Report{
			CacheTTL:    time.Minute,
			PreviewRows: opts.preview,
		},
	}

	loader := csvfile.NewLoader(csvfile.WithRemote(remote.NewClient(cfg), remote.IsURL))

	service, err := reporting.NewService(cfg, loader)
	if err != nil {
		return err
	}

	ctx, _ = log.WithCorrelationID(ctx)
	report, err := service.GetReport(ctx, csvfile.DatasetName(opts.file))
	if err != nil {
		return err
	}

	if err := reporter.NewConsole(stdout).Print(report); err != nil {
		return err
	}

	if opts.json {
		dashboard, err := utils.PrettyJson(charting.Dashboard(report))
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\n%s\n", dashboard)
	}

	return nil
}

// runCheck valida a instalação gerando um relatório conhecido de ponta a ponta
func runCheck(stdout io.Writer) error {
	rows, err := csvfile.NewLoader().Read(bytes.NewReader(smokeDataset))
	if err != nil {
		return fmt.Errorf("smoke dataset: %w", err)
	}
	fmt.Fprintf(stdout, "✅ dataset reader ok (%d rows)\n", len(rows))

	report, err := aggregating.Build(rows)
	if err != nil {
		return fmt.Errorf("smoke report: %w", err)
	}
	fmt.Fprintf(stdout, "✅ aggregation ok (total revenue %s)\n", reporter.Currency(report.Insights.TotalRevenue))

	trend, err := aggregating.FitTrend(report.MonthlySeries.Values()[:smokeMonths])
	if err != nil {
		return fmt.Errorf("smoke trend: %w", err)
	}
	if math.Abs(trend.Slope-smokeSlope) > smokeTolerance || math.Abs(trend.Intercept-smokeIntercept) > smokeTolerance {
		return fmt.Errorf("smoke trend: expected y = %.0fx + %.0f, got y = %gx + %g", smokeSlope, smokeIntercept, trend.Slope, trend.Intercept)
	}
	fmt.Fprintf(stdout, "✅ trend fit ok (y = %.0fx + %.0f)\n", trend.Slope, trend.Intercept)

	dashboard := charting.Dashboard(report)
	if _, err := utils.PrettyJson(dashboard); err != nil {
		return fmt.Errorf("smoke charts: %w", err)
	}
	fmt.Fprintln(stdout, "✅ chart series ok")

	fmt.Fprintln(stdout, "\n🎉 All checks passed!")
	return nil
}
