// Command gcal-auth authorizes Google Calendar access once and writes the
// OAuth token the gcalendar scheduler backend reads at startup.
//
// Usage:
//
//	go run ./scripts/gcal-auth --credentials google-credentials.json --token token.json
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "gcal-auth",
		Usage: "authorize the dentistry assistant to book into a Google Calendar",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "credentials",
				Value:   "google-credentials.json",
				Usage:   "OAuth desktop app credentials file",
				Sources: cli.EnvVars("GOOGLE_CALENDAR_CREDENTIALS_PATH"),
			},
			&cli.StringFlag{
				Name:    "token",
				Value:   "token.json",
				Usage:   "where to write the issued token",
				Sources: cli.EnvVars("GOOGLE_CALENDAR_TOKEN_PATH"),
			},
		},
		Action: authorize,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func authorize(ctx context.Context, cmd *cli.Command) error {
	credsPath := cmd.String("credentials")
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("parse credentials (expected an OAuth desktop app file): %w", err)
	}

	fmt.Println("1. Open this URL and sign in with the calendar owner's Google account:")
	fmt.Println()
	fmt.Println(config.AuthCodeURL("dentistry-assistant", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code here: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	tokenPath := cmd.String("token")
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", tokenPath, err)
	}

	fmt.Printf("\nToken saved to %s. Set scheduler.backend=gcalendar and restart the service.\n", tokenPath)
	return nil
}
