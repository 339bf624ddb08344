package main

import (
	"flag"
	"log/slog"
	"os"

	"credopass/internal/db/migrate"
	"credopass/internal/lib/sl"
)

func main() {
	var direction string
	flag.StringVar(&direction, "direction", migrate.DirectionUp, "up or down")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := migrate.Run(os.Getenv("DATABASE_URL"), direction); err != nil {
		log.Error("migration failed", slog.String("direction", direction), sl.Err(err))
		os.Exit(1)
	}

	log.Info("migrations applied", slog.String("direction", direction))
}
