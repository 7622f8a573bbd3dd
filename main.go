package main

import (
	"fmt"
	"os"

	"fjacquet/expensas-report/cmd/report"
	"fjacquet/expensas-report/cmd/root"
	"fjacquet/expensas-report/cmd/sheets"
	"fjacquet/expensas-report/cmd/template"
	"fjacquet/expensas-report/cmd/units"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(units.Cmd)
	root.Cmd.AddCommand(sheets.Cmd)
	root.Cmd.AddCommand(template.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
