package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-breed-cache/breed"
	"github.com/goliatone/go-breed-cache/dogapi"
	"github.com/goliatone/go-breed-cache/internal/logging"
	"github.com/goliatone/go-breed-cache/pkg/di"
)

var (
	// errAllFailed is returned when no lookup produced a result.
	errAllFailed = errors.New("no breed could be resolved")

	errNoBreeds = errors.New("at least one BREED is required")
)

func newCommand(out io.Writer, opts ...di.Option) *cli.Command {
	return &cli.Command{
		Name:      "subbreeds",
		Usage:     "List dog sub-breeds through a memoizing fetcher",
		ArgsUsage: "BREED...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "dog API base URL",
				Value: dogapi.DefaultBaseURL,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per request timeout",
				Value: dogapi.DefaultTimeout,
			},
			&cli.BoolFlag{
				Name:  "bounded",
				Usage: "use the bounded, expiring cache instead of the permanent one",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if lvl := cmd.String("log-level"); lvl != "" {
				w := cmd.ErrWriter
				if w == nil {
					w = os.Stderr
				}
				if err := logging.Init(w, lvl); err != nil {
					return err
				}
			}

			breeds := cmd.Args().Slice()
			if len(breeds) == 0 {
				return errNoBreeds
			}

			cfg := di.DefaultConfig()
			cfg.DogAPI.BaseURL = cmd.String("base-url")
			cfg.DogAPI.Timeout = cmd.Duration("timeout")
			cfg.Bounded = cmd.Bool("bounded")

			container, err := di.NewContainer(cfg, opts...)
			if err != nil {
				return err
			}

			return lookup(ctx, out, container, breeds)
		},
	}
}

func lookup(ctx context.Context, out io.Writer, container *di.Container, breeds []string) error {
	fetcher := container.Fetcher()

	resolved := 0
	for _, b := range breeds {
		subs, err := fetcher.GetSubBreeds(ctx, b)
		switch {
		case breed.IsNotFound(err):
			log.WithError(err).Debug("lookup failed")
			fmt.Fprintf(out, "%s: not found\n", b)
		case err != nil:
			return err
		case len(subs) == 0:
			resolved++
			fmt.Fprintf(out, "%s: (no sub-breeds)\n", b)
		default:
			resolved++
			fmt.Fprintf(out, "%s: %s\n", b, strings.Join(subs, ", "))
		}
	}

	fmt.Fprintf(out, "calls made: %d\n", fetcher.CallsMade())

	if resolved == 0 {
		return errAllFailed
	}
	return nil
}
