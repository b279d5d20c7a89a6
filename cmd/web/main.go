package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/medcatalog/config"
	"github.com/Gunvolt24/medcatalog/internal/app"
)

// Front-end сервер: прогревает снимок каталога из API и отдаёт его.
// Без прогретого снимка не стартует.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.BootstrapWeb(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		os.Exit(1)
	}

	runErr := a.Run(ctx)
	cleanup()
	if runErr != nil {
		os.Exit(1)
	}
}
