package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wichananm65/citation-network-ui/internal/config"
	"github.com/wichananm65/citation-network-ui/internal/uiconfig"
)

var printCmd = &cli.Command{
	Name:  "print",
	Usage: "Print the resolved runtime config as JSON",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "script",
			Usage: "Print a config.js script instead of JSON",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		return printConfig(os.Stdout, config.Load(), cmd.Bool("script"))
	},
}

func printConfig(w io.Writer, cfg config.Config, script bool) error {
	payload := uiconfig.NewService(cfg).Current()

	if script {
		b, err := uiconfig.Script(payload)
		if err != nil {
			return fmt.Errorf("encode config script: %w", err)
		}
		_, err = w.Write(b)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
