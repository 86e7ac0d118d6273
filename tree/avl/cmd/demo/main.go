// Command demo drives avl.Tree from the command line: it inserts
// sequences of integer keys, prints the tree, searches for keys and
// compares the height against an unbalanced binary search tree.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		slog.Error("exiting process", "err", err.Error())
		os.Exit(1)
	}
}

func run(args []string, out, errOut io.Writer) error {
	app := cli.App{
		Name:      "demo",
		Usage:     "build AVL trees of integer keys and inspect them",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: errOut,
		Metadata:  map[string]any{},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"AVL_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			cctx.App.Metadata[loggerKey] = configLogger(cctx, cctx.App.ErrWriter)
			return nil
		},
	}

	app.Commands = []*cli.Command{
		cmdSequential,
		cmdKeys,
		cmdCompare,
		cmdStats,
		{
			Name:  "version",
			Usage: "print version",
			Action: func(cctx *cli.Context) error {
				fmt.Fprintln(cctx.App.Writer, versioninfo.Short())
				return nil
			},
		},
	}

	return app.Run(args)
}

const loggerKey = "logger"

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
}

// logger returns the logger set up by configLogger for this run.
func logger(cctx *cli.Context) *slog.Logger {
	for _, c := range cctx.Lineage() {
		if c.App == nil {
			continue
		}
		if l, ok := c.App.Metadata[loggerKey].(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}
