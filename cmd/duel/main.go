package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"duelboard/internal/console"
	"duelboard/internal/rules"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	gameName := flag.String("game", getenv("DUEL_GAME", ""), "chess or checkers; asks on stdin when empty")
	flag.Parse()

	var g *console.Game
	if *gameName != "" {
		game, ok := rules.ParseGameType(*gameName)
		if !ok {
			log.Fatalf("unknown game %q", *gameName)
		}
		g = console.New(game, os.Stdin, os.Stdout)
	} else {
		var err error
		g, err = console.ChooseGame(os.Stdin, os.Stdout)
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	if err := g.Play(); err != nil {
		log.Fatal(err)
	}
}
