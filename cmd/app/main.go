package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	_ = godotenv.Load()

	app := &cli.Command{
		Name:    "citation-ui",
		Version: Version,
		Usage:   "Serve the citation network UI and its runtime config",
		Commands: []*cli.Command{
			serveCmd,
			printCmd,
			{
				Name:  "version",
				Usage: "Print the version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("citation-ui version %s\n", cmd.Root().Version)
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
