package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/gfx-lab/overlaydeck/pkg/cli/config"
	"github.com/gfx-lab/overlaydeck/pkg/service/assist"
	"github.com/gfx-lab/overlaydeck/pkg/utils/logging"
)

func cmdAssist() *cli.Command {
	var title string
	var category string
	var description string
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Overlay title to generate content for (required)",
			Required:    true,
			Destination: &title,
		},
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Overlay category, improves description quality",
			Destination: &category,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Overlay description, improves tag quality",
			Destination: &description,
		},
	}

	flags = append(flags, geminiCfg.Flags()...)

	newService := func(ctx context.Context) (assist.Service, error) {
		llmClient, err := geminiCfg.Configure(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize Gemini client")
		}
		if llmClient == nil {
			return nil, goerr.New("--gemini-project is required for assist")
		}
		return assist.New(llmClient)
	}

	return &cli.Command{
		Name:    "assist",
		Aliases: []string{"a"},
		Usage:   "Generate overlay content with the configured LLM",
		Commands: []*cli.Command{
			{
				Name:  "description",
				Usage: "Generate a description for an overlay title",
				Flags: flags,
				Action: func(ctx context.Context, c *cli.Command) error {
					svc, err := newService(ctx)
					if err != nil {
						return err
					}

					logging.Default().Info("Generating description", "title", title, "category", category)
					result, err := svc.GenerateDescription(ctx, title, category)
					if err != nil {
						return goerr.Wrap(err, "failed to generate description")
					}

					fmt.Fprintln(os.Stdout, result)
					return nil
				},
			},
			{
				Name:  "tags",
				Usage: "Suggest tags for an overlay",
				Flags: flags,
				Action: func(ctx context.Context, c *cli.Command) error {
					svc, err := newService(ctx)
					if err != nil {
						return err
					}

					logging.Default().Info("Suggesting tags", "title", title)
					tags, err := svc.SuggestTags(ctx, title, description)
					if err != nil {
						return goerr.Wrap(err, "failed to suggest tags")
					}

					fmt.Fprintln(os.Stdout, strings.Join(tags, "\n"))
					return nil
				},
			},
		},
	}
}
