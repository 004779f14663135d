package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/indemniza/severance-calculator/internal/api"
	"github.com/indemniza/severance-calculator/internal/calculation"
	"github.com/indemniza/severance-calculator/internal/config"
	"github.com/indemniza/severance-calculator/internal/domain"
	"github.com/indemniza/severance-calculator/internal/output"
)

// newEngine resolves the rule set from --rules/--rules-file and wires the logger.
func (a *app) newEngine(parser *config.InputParser, rulesName, rulesFile string) (*calculation.CalculationEngine, error) {
	rules, err := parser.ResolveRules(rulesName, rulesFile)
	if err != nil {
		return nil, err
	}
	engine, err := calculation.NewCalculationEngineWithRules(rules)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(a.logger.Sugar())
	engine.Debug = a.verbose
	return engine, nil
}

func (a *app) calcCmd() *cobra.Command {
	var (
		raw       domain.RawInput
		rulesName string
		rulesFile string
		format    string
		outputDir string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the settlement for one employee",
		Example: `  severance calc --birth 01/01/1970 --hire 01/01/2000 --termination 01/01/2024 \
    --salary 40000 --supplements 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			profile, err := parser.ParseRawInput(raw)
			if err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
			engine, err := a.newEngine(parser, rulesName, rulesFile)
			if err != nil {
				return err
			}

			result := engine.Calculate(profile)
			result.Assumptions = output.GenerateNotes(engine.Rules)

			if outputDir != "" {
				path, err := output.GenerateReport(result, format, outputDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				return nil
			}
			data, err := output.Render(result, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&raw.Name, "name", "", "Employee name shown in the report")
	f.StringVar(&raw.BirthDate, "birth", "", "Birth date (dd/mm/yyyy)")
	f.StringVar(&raw.HireDate, "hire", "", "Hire date (dd/mm/yyyy)")
	f.StringVar(&raw.TerminationDate, "termination", "", "Termination date (dd/mm/yyyy)")
	f.StringVar(&raw.BaseSalary, "salary", "", "Annual base salary")
	f.StringVar(&raw.Supplements, "supplements", "0", "Annual salary supplements")
	addRulesFlags(f.StringVar, &rulesName, &rulesFile)
	addOutputFlags(f.StringVar, &format, &outputDir)
	for _, name := range []string{"birth", "hire", "termination", "salary"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	var rulesName, rulesFile, format, outputDir string
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Calculate every case of a YAML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			batch, err := parser.LoadBatchFile(args[0])
			if err != nil {
				return err
			}
			if rulesName == "" && rulesFile == "" {
				rulesName = batch.RulesName
			}
			engine, err := a.newEngine(parser, rulesName, rulesFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			result, err := engine.RunBatch(ctx, batch)
			if err != nil {
				return err
			}
			notes := output.GenerateNotes(engine.Rules)
			for _, e := range result.Entries {
				if e.Result != nil {
					e.Result.Assumptions = notes
				}
			}
			a.logger.Info("batch finished",
				zap.String("file", args[0]),
				zap.String("rules", result.RulesName),
				zap.Int("cases", len(result.Entries)),
				zap.Int("failed", result.Failed()))

			if outputDir != "" {
				path, err := output.GenerateBatchReport(result, format, outputDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				return nil
			}
			data, err := output.RenderBatch(result, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	f := cmd.Flags()
	addRulesFlags(f.StringVar, &rulesName, &rulesFile)
	addOutputFlags(f.StringVar, &format, &outputDir)
	return cmd
}

func (a *app) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in tax rule sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, r := range calculation.AvailableRules() {
				marker := ""
				if r.Name == calculation.DefaultRulesName {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s%s\n", r.Name, marker)
				if r.Description != "" {
					fmt.Fprintf(w, "  %s\n", r.Description)
				}
				fmt.Fprintf(w, "  Exempt threshold:  %s\n", output.FormatCurrency(r.ExemptThreshold))
				fmt.Fprintf(w, "  Taxable excess:    %s\n", output.FormatPercentage(r.ReductionFactor))
				fmt.Fprintf(w, "  Legal fully exempt: %t\n", r.LegalFullyExempt)
				for _, b := range r.Brackets {
					upper := "and above"
					if !b.Unbounded {
						upper = "to " + output.FormatCurrency(b.Max)
					}
					fmt.Fprintf(w, "    %s %s: %s\n", output.FormatCurrency(b.Min), upper, output.FormatPercentage(b.Rate))
				}
			}
			return nil
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	cfg := api.DefaultConfig()
	var rulesName, rulesFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.newEngine(config.NewInputParser(), rulesName, rulesFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := api.NewHandler(engine, a.logger)
			return api.NewServer(cfg, handler, a.logger).Run(ctx)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	f.StringSliceVar(&cfg.AllowedOrigins, "allowed-origins", cfg.AllowedOrigins, "Origins allowed by CORS")
	addRulesFlags(f.StringVar, &rulesName, &rulesFile)
	return cmd
}

func (a *app) exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example batch file covering every scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_batch.yaml"
			if len(args) > 0 {
				filename = args[0]
			}
			if err := config.NewInputParser().WriteExampleBatch(filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example batch written to %s\n", filename)
			return nil
		},
	}
}

type stringVarFunc func(p *string, name, value, usage string)

func addRulesFlags(sv stringVarFunc, rulesName, rulesFile *string) {
	sv(rulesName, "rules", "", "Built-in rule set ("+strings.Join(calculation.AvailableRulesNames(), ", ")+")")
	sv(rulesFile, "rules-file", "", "YAML file with a custom rule set")
}

func addOutputFlags(sv stringVarFunc, format, outputDir *string) {
	sv(format, "format", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	sv(outputDir, "output", "", "Write a timestamped report into this directory instead of stdout")
}
