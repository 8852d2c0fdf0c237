package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"duelboard/internal/server/game"
	httpserver "duelboard/internal/server/http"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := flag.String("addr", getenv("DUEL_ADDR", ":2888"), "listen address")
	webDir := flag.String("web", "", "directory with index.html / js, served under /")
	quiet := flag.Bool("quiet", false, "disable request logging")
	flag.Parse()

	h := httpserver.NewHandler(game.NewManager())
	app := httpserver.NewApp(h, httpserver.Options{WebDir: *webDir, Quiet: *quiet})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s", *addr)
		return app.Listen(*addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Printf("shutting down, %d games open", h.Games().Len())
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
