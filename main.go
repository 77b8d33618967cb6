package main

import (
	"fmt"
	"os"

	"github.com/jbqneto/financial-flow/cmd/ingest"
	"github.com/jbqneto/financial-flow/cmd/insights"
	"github.com/jbqneto/financial-flow/cmd/ledger"
	"github.com/jbqneto/financial-flow/cmd/report"
	"github.com/jbqneto/financial-flow/cmd/root"
	"github.com/jbqneto/financial-flow/cmd/rules"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(ledger.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(insights.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
