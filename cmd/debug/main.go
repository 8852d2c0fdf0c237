package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pkg/profile"

	"duelboard/internal/rules"
)

func main() {
	layout := flag.String("layout", "", "board layout as printed by Encode; initial position when empty")
	gameName := flag.String("game", "chess", "game for the initial position")
	prof := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	var b *rules.Board
	if *layout != "" {
		var err error
		if b, err = rules.DecodeBoard(*layout); err != nil {
			log.Fatal(err)
		}
	} else {
		game, ok := rules.ParseGameType(*gameName)
		if !ok {
			log.Fatalf("unknown game %q", *gameName)
		}
		b = rules.NewBoard(game)
	}

	fmt.Println("Layout:", b.Encode())
	fmt.Printf("Hash: %016x\n", b.Hash())
	fmt.Print(b.Render(nil))

	total := [2]int{}
	for r := 0; r < rules.Rows; r++ {
		for c := 0; c < rules.Cols; c++ {
			sq := rules.Square{Row: r, Col: c}
			pc, ok := b.PieceAt(sq)
			if !ok {
				continue
			}
			moves := b.LegalDestinations(sq)
			total[pc.Color] += len(moves)
			if len(moves) > 0 {
				fmt.Printf("%s %s %s: %v\n", sq, pc.Color, pc.Kind, moves)
			}
		}
	}
	fmt.Printf("Pseudo legal moves: white %d, black %d\n", total[rules.White], total[rules.Black])
}
