// FriendGrid CLI - run the contact upsert node from a terminal.
//
// Usage:
//
//	friendgrid contact create --email a@x.com [--first-name Jo] [--last-name Doe]
//	friendgrid describe
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	app := newApp()
	app.Version = fmt.Sprintf("%s (commit: %s)", version, commit)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
