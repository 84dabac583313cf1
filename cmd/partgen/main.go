// Command partgen generates T-slot aluminium extrusions and the printed
// parts used with them as STL files and PNG previews.
package main

import (
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
