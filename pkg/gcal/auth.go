package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewService authorizes against Google Calendar and returns a ready API
// service. The OAuth client secret is read from credentialsPath; the granted
// token is cached at tokenPath and refreshed transparently on later runs.
// Any failure here is fatal to the caller, there is no recovery path.
func NewService(ctx context.Context, credentialsPath, tokenPath string) (*calendar.Service, error) {
	secret, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read OAuth credentials file: %w", err)
	}

	conf, err := google.ConfigFromJSON(secret, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth credentials: %w", err)
	}

	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		tok, err = tokenFromWeb(ctx, conf)
		if err != nil {
			return nil, err
		}
	}

	ts := conf.TokenSource(ctx, tok)
	fresh, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh authorization token: %w", err)
	}

	// Persist whatever token we ended up with so the next run skips the
	// browser flow.
	if err := saveToken(tokenPath, fresh); err != nil {
		return nil, err
	}

	srv, err := calendar.NewService(ctx, option.WithTokenSource(oauth2.ReuseTokenSource(fresh, ts)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return srv, nil
}

// tokenFromWeb walks the operator through the one-time browser consent flow.
func tokenFromWeb(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, then paste the authorization code:\n%s\n\nCode: ", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
