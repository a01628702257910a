// Command perft counts legal move sequences from a position, the standard
// oracle for move-generator correctness. With -divide it prints the node
// count under each root move.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/C2H6Ethan/DistributedChess/internal/bench"
	"github.com/C2H6Ethan/DistributedChess/internal/board"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "position to count from")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	flag.Parse()

	if *depth < 1 {
		log.Fatal("depth must be >= 1")
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parse FEN: %v", err)
	}

	printBoard(pos)

	if *divide {
		printer := message.NewPrinter(language.English)
		split, total := bench.Divide(pos, *depth)
		for _, e := range split {
			fmt.Printf("%s: %s\n", e.Move, printer.Sprintf("%d", e.Nodes))
		}
		color.New(color.Bold).Printf("total: %s\n", printer.Sprintf("%d", total))
		return
	}

	err = bench.Run(*fen, *depth, func(line string) {
		fmt.Println(line)
	})
	if err != nil {
		log.Fatal(err)
	}
}

// printBoard renders the position with light/dark squares colorized.
func printBoard(pos *board.Position) {
	light := color.New(color.BgWhite, color.FgBlack)
	dark := color.New(color.BgCyan, color.FgBlack)

	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			piece := pos.PieceAt(sq)

			cell := " " + piece.String() + " "
			if (file+rank)%2 == 0 {
				dark.Print(cell)
			} else {
				light.Print(cell)
			}
		}
		fmt.Println()
	}
	fmt.Println("   a  b  c  d  e  f  g  h")
	fmt.Printf("%s to move\n\n", pos.SideToMove)
}
