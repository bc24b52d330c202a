/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	gicbank "github.com/blnkfinance/gicbank"
	"github.com/blnkfinance/gicbank/config"
	"github.com/blnkfinance/gicbank/internal/console"
)

// GicBank represents the CLI application, encapsulating the root Cobra command.
type GicBank struct {
	cmd *cobra.Command
}

// bankInstance holds the in-memory bank and the configuration it runs with.
// It lives for one process; nothing is persisted between runs.
type bankInstance struct {
	bank *gicbank.Bank
	cnf  *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration, applies the logging settings and creates
// the bank before any command runs.
func preRun(app *bankInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(*configFile); err != nil {
			return errors.Wrap(err, "error loading config")
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}
		cnf.ConfigureLogger()

		app.bank = gicbank.NewBank()
		app.cnf = cnf
		return nil
	}
}

// runConsole drives the interactive menu on stdin/stdout.
func runConsole(app *bankInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return console.New(app.bank, cmd.InOrStdin(), cmd.OutOrStdout(), app.cnf.ProjectName).Run()
	}
}

// NewCLI creates the command-line interface. Without a subcommand it starts
// the interactive console.
func NewCLI() *GicBank {
	var configFile string
	b := &bankInstance{}

	var rootCmd = &cobra.Command{
		Use:          "gicbank",
		Short:        "Interactive GIC bank ledger with tiered interest",
		SilenceUsage: true,
		RunE:         runConsole(b),
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./"+config.DEFAULT_CONFIG_FILE, "Configuration file for gicbank")
	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(serverCommands(b))
	rootCmd.AddCommand(configCommands(b))

	return &GicBank{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (g GicBank) executeCLI() {
	if err := g.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
