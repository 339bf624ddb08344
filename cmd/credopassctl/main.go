package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"credopass/internal/client"
	"credopass/internal/lib/config"
	"credopass/internal/lib/sl"

	"github.com/google/uuid"
)

var errUsage = errors.New("usage: credopassctl [-config path] delete <collection> <id>")

type deleter interface {
	Delete(ctx context.Context, name string, id uuid.UUID) error
	Names() []string
}

// run executes one command against the API.
func run(ctx context.Context, log *slog.Logger, collections deleter, args []string) error {
	if len(args) != 3 || args[0] != "delete" {
		return errUsage
	}

	name, rawID := args[1], args[2]
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", rawID, err)
	}

	if err := collections.Delete(ctx, name, id); err != nil {
		if errors.Is(err, client.ErrCollectionNotFound) {
			return fmt.Errorf("%w (known: %s)", err, strings.Join(collections.Names(), ", "))
		}
		return err
	}

	log.Info("record deleted", slog.String("collection", name), slog.String("id", id.String()))
	return nil
}

func main() {
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := client.NewFromConfig(cfg.Client)
	if err != nil {
		log.Error("failed to init api client", sl.Err(err))
		os.Exit(1)
	}

	if err := run(ctx, log, c.Collections(), flag.Args()); err != nil {
		log.Error("command failed", slog.String("base_url", c.BaseURL()), sl.Err(err))
		os.Exit(1)
	}
}
