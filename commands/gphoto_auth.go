package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// --- OAuth2 & Client Setup ---

const (
	appendOnlyScope  = "https://www.googleapis.com/auth/photoslibrary.appendonly"
	readAppDataScope = "https://www.googleapis.com/auth/photoslibrary.readonly.appcreateddata"
	tokenFileName    = "google_photos_token.json"
)

// AuthCodePrompter obtains an authorization code for a consent URL. The
// console variant blocks on stdin; tests substitute a canned code source.
type AuthCodePrompter interface {
	Prompt(authURL string) (string, error)
}

// ConsolePrompter prints the consent URL and reads the authorization code
// from standard input.
type ConsolePrompter struct{}

func (ConsolePrompter) Prompt(authURL string) (string, error) {
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return "", fmt.Errorf("unable to read authorization code: %w", err)
	}
	return authCode, nil
}

// GetAuthenticatedGooglePhotosClient creates an authenticated HTTP client
// from the API credentials file. It handles token loading, refreshing, and
// saving; a cached valid token skips the interactive flow entirely. Takes
// configDir to locate the token file.
func GetAuthenticatedGooglePhotosClient(ctx context.Context, credentialsPath, configDir string, prompter AuthCodePrompter) (*http.Client, error) {
	credBytes, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", credentialsPath, err)
	}
	// The credentials file schema is owned by Google; the oauth2 library
	// parses it.
	conf, err := google.ConfigFromJSON(credBytes, appendOnlyScope, readAppDataScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", credentialsPath, err)
	}

	tokenFilePath, err := getTokenFilePath(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get token file path: %w", err)
	}

	token, err := loadToken(tokenFilePath)
	if err != nil {
		return nil, err
	}

	if token == nil || !token.Valid() {
		logger.Info("OAuth token is invalid or missing, starting auth flow")
		token, err = getTokenFromWeb(ctx, conf, prompter)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenFilePath, token); err != nil {
			// The token is still usable in memory for this run.
			logger.Warn("Failed to save token",
				slog.String("path", tokenFilePath),
				slog.String("error", err.Error()))
		} else {
			logger.Debug("Token obtained and saved", slog.String("path", tokenFilePath))
		}
	}

	return conf.Client(ctx, token), nil
}

// getTokenFilePath constructs the path to the token file based on the config directory.
func getTokenFilePath(configDir string) (string, error) {
	if configDir == "." || configDir == "" {
		return "", fmt.Errorf("config directory path is empty or invalid")
	}
	return filepath.Join(configDir, tokenFileName), nil
}

// loadToken reads a cached token. A missing or undecodable file returns a
// nil token, forcing the interactive flow.
func loadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open token file %s: %w", path, err)
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		logger.Warn("Failed to decode token file, requesting new token",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, nil
	}
	return token, nil
}

// saveToken saves the OAuth2 token to the specified file path.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// getTokenFromWeb guides the user through the web-based OAuth2 flow.
func getTokenFromWeb(ctx context.Context, conf *oauth2.Config, prompter AuthCodePrompter) (*oauth2.Token, error) {
	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	authCode, err := prompter.Prompt(authURL)
	if err != nil {
		return nil, err
	}

	tok, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return tok, nil
}
