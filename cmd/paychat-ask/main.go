// Command paychat-ask answers a single payroll question from the CSV ledger
// and prints the answer with its evidence. Useful for smoke checks without
// the HTTP service
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"paychat/internal/adapters/serper"
	"paychat/internal/core/period"
	"paychat/internal/core/roster"
	"paychat/internal/platform/config"
	"paychat/internal/platform/logger"
	chatsvc "paychat/internal/services/chat/service"
	payrepo "paychat/internal/services/payroll/repo"
	paysvc "paychat/internal/services/payroll/service"
)

func main() {
	var (
		csvPath  = flag.String("csv", "", "payroll CSV path (default PAYROLL_CSV or data/payroll.csv)")
		withJSON = flag.Bool("evidence", false, "print the evidence rows")
	)
	flag.Parse()

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: paychat-ask [-csv path] [-evidence] <pergunta>")
		os.Exit(2)
	}

	logger.Init(logger.FromEnv())
	l := logger.Get()
	root := config.New()

	path := *csvPath
	if path == "" {
		path = root.Prefix("PAYROLL_").MayString("CSV", "data/payroll.csv")
	}

	ledger, err := payrepo.OpenCSV(path)
	if err != nil {
		l.Fatal().Err(err).Str("path", path).Msg("cannot load payroll csv")
	}

	var web chatsvc.WebSearcher
	serperCfg := root.Prefix("SERPER_")
	if key := serperCfg.MayString("API_KEY", ""); key != "" {
		web = serper.NewClient(serper.Options{
			APIKey:  key,
			Timeout: serperCfg.MayDuration("TIMEOUT", 10*time.Second),
		})
	}

	engine := chatsvc.NewEngine(
		paysvc.New(ledger),
		roster.Default(),
		period.New(root.Prefix("PAYROLL_").MayInt("DEFAULT_YEAR", 2025)),
		web,
	)

	ans := engine.Answer(context.Background(), query)
	fmt.Println(ans.Message)

	if *withJSON && len(ans.Evidence) > 0 {
		fmt.Println()
		for _, ev := range ans.Evidence {
			fmt.Printf("  %s  %s  %s  net %.2f  paid %s\n",
				ev.EmployeeID, ev.Name, ev.Competency, ev.NetPay, ev.PaymentDate)
		}
	}
}
