// Command daifugoctl inspects Daifugo hands offline: it replays card
// selections, lists the legal plays on a given table and asks a bot for a move.
package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
