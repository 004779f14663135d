package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	calc "github.com/indemniza/severance-calculator/internal/calculation"
	"github.com/indemniza/severance-calculator/internal/config"
	"github.com/indemniza/severance-calculator/internal/output"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_batch <batch-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	batch, err := p.LoadBatchFile(f)
	if err != nil {
		panic(err)
	}
	rules, err := p.ResolveRules(batch.RulesName, "")
	if err != nil {
		panic(err)
	}
	engine, err := calc.NewCalculationEngineWithRules(rules)
	if err != nil {
		panic(err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	engine.SetLogger(logger.Sugar())
	engine.Debug = true

	res, err := engine.RunBatch(context.Background(), batch)
	if err != nil {
		panic(err)
	}

	for _, e := range res.Entries {
		if e.Result == nil {
			fmt.Printf("%-40s ERROR %s\n", e.Name, e.Error)
			continue
		}
		s := output.Summarize(e.Result)
		fmt.Printf("%-40s %-20s gross %14s tax %14s net %14s %s\n",
			e.Name, s.Scenario,
			output.FormatCurrency(s.Gross),
			output.FormatCurrency(s.Tax),
			output.FormatCurrency(s.Net),
			s.Note)
	}
}
