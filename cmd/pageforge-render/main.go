// Command pageforge-render loads a saved page and prints its render tree,
// for debugging page documents outside the builder.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/pageforge/pageforge/pkg/cmd"
	"github.com/pageforge/pageforge/pkg/log"
	"github.com/pageforge/pageforge/pkg/render"
)

func main() {
	logger := log.WithModule("render")

	command := &cli.Command{
		Name:                  "pageforge-render",
		Usage:                 "Render a saved page definition to a node tree",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "database-url",
				Usage:    "Storage URL: postgres://... or a file root",
				Required: true,
				Sources:  cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:     "app-id",
				Usage:    "App owning the page",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "page-id",
				Usage:    "Page to render",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Render mode (edit, preview, published)",
				Value: string(render.ModePublished),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format (json, text)",
				Value: "json",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			mode := render.Mode(command.String("mode"))

			switch mode {
			case render.ModeEdit, render.ModePreview, render.ModePublished:
			default:
				return fmt.Errorf("invalid mode %q", mode)
			}

			persistence, err := cmd.NewPersistence(ctx, logger, command.String("database-url"))
			if err != nil {
				return err
			}

			defer func() {
				if err := persistence.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			stored, err := persistence.PageByID(ctx, command.String("app-id"), command.String("page-id"))
			if err != nil {
				return err
			}

			def := render.DecodeStored(*stored, logger)
			tree := render.NewRenderer(logger).RenderPage(def, mode)

			if command.String("format") == "text" {
				printNode(tree, 0)

				return nil
			}

			out, err := json.MarshalIndent(tree, "", "  ")
			if err != nil {
				return err
			}

			fmt.Println(string(out))

			return nil
		},
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}

func printNode(node *render.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	label := string(node.Type)
	if node.WidgetID != "" {
		label += " (" + node.WidgetID + ")"
	}

	if node.Text != "" {
		label += ": " + node.Text
	}

	if node.Hidden {
		label += " [hidden]"
	}

	fmt.Println(indent + label)

	for _, child := range node.Children {
		printNode(child, depth+1)
	}
}
