package main

import (
	"fmt"
	"os"

	"gilo/editor"
)

func main() {
	e := editor.NewEditor()

	if err := e.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer e.RestoreTerminal()

	if err := e.Init(); err != nil {
		e.Die("%v", err)
	}

	if len(os.Args) >= 2 {
		if err := e.Open(os.Args[1]); err != nil {
			e.Die("%v", err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-G = help")

	for {
		e.RefreshScreen()
		e.ProcessKeypress()
	}
}
