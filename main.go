package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/binweight/binweight/version"
)

func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Print(version.String())
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "binweight",
		Usage:     "attribute the compiled-code size of a binary to source files and functions",
		ArgsUsage: "<binary>",
		Version:   version.VERSION,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "prepend a label segment to every key",
			},
			&cli.BoolFlag{
				Name:    "compilation-units",
				Aliases: []string{"u"},
				Value:   false,
				Usage:   "partition keys per compilation unit",
			},
			&cli.BoolFlag{
				Name:    "split-paths",
				Aliases: []string{"s"},
				Value:   false,
				Usage:   "keep directory components as separate key segments",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "output format: table, json or csv",
			},
			&cli.IntFlag{
				Name:    "top",
				Aliases: []string{"t"},
				Value:   30,
				Usage:   "table rows to show, 0 for all",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Value: false,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Action: func(ctx *cli.Context) (err error) {
			if ctx.NArg() != 1 {
				cli.ShowAppHelp(ctx)
				return errors.New("expected exactly one binary argument")
			}
			analyzer, err := NewAnalyzer(ctx.Args().First(), Options{
				Prefix:           ctx.String("prefix"),
				CompilationUnits: ctx.Bool("compilation-units"),
				SplitPaths:       ctx.Bool("split-paths"),
				Format:           ctx.String("format"),
				Top:              ctx.Int("top"),
			})
			if err != nil {
				return
			}
			defer analyzer.Close()
			return analyzer.Run(os.Stdout)
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
