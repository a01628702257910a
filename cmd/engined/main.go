// Command engined serves the chess engine over HTTP: move validation on
// POST /move and best-move search on POST /search.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/C2H6Ethan/DistributedChess/internal/book"
	"github.com/C2H6Ethan/DistributedChess/internal/engine"
	"github.com/C2H6Ethan/DistributedChess/internal/server"
)

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	hashMB := flag.Int("hash", 16, "transposition table size in MB")
	bookPath := flag.String("book", "", "path to a badger book database (optional)")
	noBook := flag.Bool("no-book", false, "disable the opening book")
	flag.Parse()

	tt := engine.NewTranspositionTable(*hashMB)

	var b *book.Book
	if !*noBook {
		b = book.Builtin()
		if *bookPath != "" {
			store, err := book.OpenStore(*bookPath)
			if err != nil {
				log.Fatalf("open book: %v", err)
			}
			if err := store.LoadInto(b); err != nil {
				log.Fatalf("load book: %v", err)
			}
			if err := store.Close(); err != nil {
				log.Printf("close book store: %v", err)
			}
		}
		log.Printf("opening book: %d positions", b.Size())
	}

	srv := server.New(tt, b)

	log.Printf("chess engine listening on %s (hash %dMB, %d entries)", *addr, *hashMB, tt.Size())
	log.Fatal(http.ListenAndServe(*addr, srv.Handler()))
}
