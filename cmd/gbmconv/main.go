package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/gbmconv"
	"github.com/bodgit/gbmconv/fixup"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// withDB opens the cache database if one was asked for
func withDB(c *cli.Context, f func(*gbmconv.AssetDB) error) error {
	if c.String("db") == "" {
		return f(nil)
	}
	db, err := gbmconv.NewAssetDB(c.String("db"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer db.Close()
	return f(db)
}

func main() {
	app := cli.NewApp()

	app.Name = "gbmconv"
	app.Usage = "Gamebuino Meta asset conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GBMCONV_DB"},
			Usage:   "path to conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.CommandNotFound = func(c *cli.Context, command string) {
		fmt.Fprintf(c.App.Writer, "Unknown command: %s. Supported commands available:\n", command)
		for _, cmd := range c.App.Commands {
			fmt.Fprintf(c.App.Writer, "%-30s: %s\n", cmd.Name, cmd.Usage)
		}
		os.Exit(1)
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a font, image or screenshot",
			Description: "Run 'gbmconv modes' for the list of modes and their parameters.",
			ArgsUsage:   "FILE MODE [PARAMS...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write C code to `FILE` instead of stdout",
				},
				&cli.BoolFlag{
					Name:  "reduce",
					Usage: "reduce images that are not indexed to 16 colors instead of failing",
				},
				&cli.BoolFlag{
					Name:  "dither",
					Usage: "enable Floyd-Steinberg error diffusion when reducing colors",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return withDB(c, func(db *gbmconv.AssetDB) error {
					conv := gbmconv.New(db, newLogger(c))
					conv.Reduce = c.Bool("reduce")
					conv.Dither = c.Bool("dither")

					b := new(bytes.Buffer)
					args := c.Args().Slice()
					if err := conv.Run(args[1], args[0], args[2:], b); err != nil {
						return cli.NewExitError(err, 1)
					}

					if c.String("output") != "" {
						if err := ioutil.WriteFile(c.String("output"), b.Bytes(), 0644); err != nil {
							return cli.NewExitError(err, 1)
						}
					} else if _, err := b.WriteTo(os.Stdout); err != nil {
						return cli.NewExitError(err, 1)
					}

					return nil
				})
			},
		},
		{
			Name:  "modes",
			Usage: "List conversion modes",
			Action: func(c *cli.Context) error {
				for _, m := range gbmconv.Modes() {
					fmt.Fprintf(c.App.Writer, "%-30s: %s\n", m.Name, m.Description)
					for _, p := range m.Params {
						opt := ""
						if p.Optional {
							opt = " (optional)"
						}
						fmt.Fprintf(c.App.Writer, "%-30s  - %s%s\n", "", p.Role, opt)
					}
				}
				return nil
			},
		},
		{
			Name:  "profiles",
			Usage: "List screenshot palette profiles",
			Action: func(c *cli.Context) error {
				for _, p := range fixup.Profiles() {
					fmt.Fprintln(c.App.Writer, p)
				}
				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Convert every font and BMP file in a directory",
			Description: "Fonts (*.font) and images (*.bmp) are converted to C code in a .h file alongside.",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return withDB(c, func(db *gbmconv.AssetDB) error {
					if err := gbmconv.New(db, newLogger(c)).Scan(c.Args().First()); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				})
			},
		},
		{
			Name:  "purge",
			Usage: "Empty the conversion cache",
			Action: func(c *cli.Context) error {
				if c.String("db") == "" {
					return cli.NewExitError("no cache database given, use --db", 1)
				}

				return withDB(c, func(db *gbmconv.AssetDB) error {
					if err := db.Purge(); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				})
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
