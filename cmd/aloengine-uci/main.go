// Command aloengine-uci is the engine's executable: a UCI loop over
// stdin/stdout, plus a -perft flag for driving move-generation tests
// without a GUI.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Al0den/AloEngine/internal/board"
	"github.com/Al0den/AloEngine/internal/uci"
)

func main() {
	perftFlag := flag.Bool("perft", false, "run a perft count instead of starting the UCI loop")
	flag.Parse()

	if *perftFlag {
		os.Exit(runPerft(flag.Args()))
	}

	session := uci.New(bufio.NewReader(os.Stdin), os.Stdout)
	session.Run()
}

// runPerft implements `aloengine-uci -perft <fen> <depth>`: prints the leaf
// node count at depth and returns a process exit code (0 on success, 2 on
// a malformed invocation).
func runPerft(args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: aloengine-uci -perft <fen> <depth>")
		return 2
	}

	fen, depthStr := args[0], args[1]
	depth, err := strconv.Atoi(depthStr)
	if err != nil || depth < 0 {
		fmt.Fprintf(os.Stderr, "invalid depth %q: %v\n", depthStr, err)
		return 2
	}

	var b *board.Board
	if fen == "startpos" {
		b = board.NewBoard()
	} else {
		b, err = board.ParseFEN(fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid FEN %q: %v\n", fen, err)
			return 2
		}
	}

	nodes := uci.Perft(b, depth)
	fmt.Printf("Nodes searched: %d\n", nodes)
	return 0
}
