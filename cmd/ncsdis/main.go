// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/nwscript-tools/ncsdis/emitter"
	"github.com/nwscript-tools/ncsdis/format"
	"github.com/nwscript-tools/ncsdis/internal/ncsfile"
	"github.com/nwscript-tools/ncsdis/model"
)

// cliConfig holds `~/.ncsdisrc` defaults (§ Configuration). Flags
// passed on the command line always win; absence of the file is not
// an error.
type cliConfig struct {
	Game              string `toml:"game"`
	Color             bool   `toml:"color"`
	PrintStack        bool   `toml:"print_stack"`
	PrintControlTypes bool   `toml:"print_control_types"`
}

func loadConfig(path string) (*cliConfig, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	cfg := &cliConfig{}
	if _, err := os.Stat(expanded); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(expanded, cfg); err != nil {
		return nil, fmt.Errorf("ncsdis: could not decode config %q: %w", expanded, err)
	}
	return cfg, nil
}

func gameFromString(s string) model.Game {
	switch s {
	case "nwn":
		return model.GameNWN
	case "nwn2":
		return model.GameNWN2
	default:
		return model.GameUnknown
	}
}

func main() {
	cfg, err := loadConfig("~/.ncsdisrc")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cfg = &cliConfig{}
	}

	app := &cli.App{
		Name:  "ncsdis",
		Usage: "render a compiled NWScript program as listing, assembly, DOT, or best-effort NSS",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "v", Usage: "enable verbose trace logging"},
			&cli.StringFlag{Name: "game", Value: cfg.Game, Usage: "target game: nwn, nwn2, or unknown"},
			&cli.BoolFlag{Name: "stack", Value: cfg.PrintStack, Usage: "print per-instruction stack dumps"},
			&cli.BoolFlag{Name: "controls", Value: cfg.PrintControlTypes, Usage: "annotate DOT nodes with control-structure tags"},
			&cli.BoolFlag{Name: "color", Value: cfg.Color, Usage: "colorize CLI diagnostics"},
		},
		Before: func(c *cli.Context) error {
			model.SetVerbose(c.Bool("v"))
			ncsfile.SetVerbose(c.Bool("v"))
			color.NoColor = !c.Bool("color")
			return nil
		},
		Commands: []*cli.Command{
			renderCommand("listing", "render the listing view", func(e *emitter.Emitter, c *cli.Context) error {
				return e.CreateListing(c.Bool("stack"))
			}),
			renderCommand("assembly", "render the assembly view", func(e *emitter.Emitter, c *cli.Context) error {
				return e.CreateAssembly(c.Bool("stack"))
			}),
			renderCommand("dot", "render the GraphViz DOT view", func(e *emitter.Emitter, c *cli.Context) error {
				return e.CreateDot(c.Bool("controls"))
			}),
			renderCommand("nss", "render the best-effort NSS reconstruction", func(e *emitter.Emitter, c *cli.Context) error {
				return e.CreateNss()
			}),
			summaryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("ncsdis: %v", err))
		os.Exit(1)
	}
}

// renderCommand wires one of the Emitter's four view methods to a CLI
// subcommand taking a single program-dump path argument.
func renderCommand(name, usage string, render func(*emitter.Emitter, *cli.Context) error) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("ncsdis %s: missing <file> argument", name)
			}

			prog, err := ncsfile.Load(path)
			if err != nil {
				return err
			}
			if game := c.String("game"); game != "" {
				prog.Game = gameFromString(game)
			}

			e := emitter.New(os.Stdout, prog)
			return render(e, c)
		},
	}
}

// summaryCommand renders the per-subroutine table (§ SUPPLEMENTAL
// FEATURES): a CLI convenience alongside the four Emitter modes, not
// a fifth one.
func summaryCommand() *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Usage:     "print a per-subroutine summary table",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("ncsdis summary: missing <file> argument")
			}

			prog, err := ncsfile.Load(path)
			if err != nil {
				return err
			}
			if game := c.String("game"); game != "" {
				prog.Game = gameFromString(game)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Address", "Kind", "Blocks", "State", "Signature"})

			for i := range prog.Subroutines {
				sub := &prog.Subroutines[i]
				sig := ""
				if prog.HasStackAnalysis && sub.State == model.AnalysisFinished {
					sig = format.Signature(prog, model.SubroutineID(i), prog.Game, true)
				}
				table.Append([]string{
					format.Addr8(sub.Entry),
					subroutineKindName(sub.Kind),
					fmt.Sprint(len(sub.Blocks)),
					analysisStateName(sub.State),
					sig,
				})
			}

			table.Render()
			return nil
		},
	}
}

func subroutineKindName(k model.SubroutineKind) string {
	switch k {
	case model.SubroutineStart:
		return "start"
	case model.SubroutineGlobal:
		return "globals"
	case model.SubroutineStoreState:
		return "store_state"
	default:
		return "normal"
	}
}

func analysisStateName(s model.AnalysisState) string {
	switch s {
	case model.AnalysisRunning:
		return "running"
	case model.AnalysisFinished:
		return "finished"
	case model.AnalysisFailed:
		return "failed"
	default:
		return "not_started"
	}
}
