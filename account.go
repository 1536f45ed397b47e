package twic

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/anatolykoptev/go-twic/oauth"
)

// ErrNoAccount is returned when no token is stored for a screen name.
var ErrNoAccount = errors.New("twitter: no stored account")

// Account is an authorized user: the access token obtained through the PIN
// flow and who it belongs to.
type Account struct {
	UserID     string      `json:"user_id"`
	ScreenName string      `json:"screen_name"`
	Token      oauth.Token `json:"token"`
	SavedAt    time.Time   `json:"saved_at"`
}

// accountDir returns the directory for persisting access tokens.
func accountDir(override string) string {
	if override != "" {
		return override
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".go-twic", "accounts")
}

// accountPath returns the file path for a given screen name's token.
// Screen names are case-insensitive.
func accountPath(dir, screenName string) string {
	return filepath.Join(dir, strings.ToLower(screenName)+".json")
}

// SaveAccount persists acc to the token store.
func (c *Client) SaveAccount(acc *Account) error {
	return saveAccount(c.cfg.AccountDir, acc)
}

// LoadAccount reads the stored token for screenName.
func (c *Client) LoadAccount(screenName string) (*Account, error) {
	return loadAccount(c.cfg.AccountDir, screenName)
}

// Accounts lists the screen names with a stored token, sorted.
func (c *Client) Accounts() ([]string, error) {
	return listAccounts(c.cfg.AccountDir)
}

func saveAccount(dir string, acc *Account) error {
	if acc.ScreenName == "" {
		return fmt.Errorf("save account: empty screen name")
	}
	d := accountDir(dir)
	if err := os.MkdirAll(d, 0700); err != nil {
		return fmt.Errorf("create account dir: %w", err)
	}
	acc.SavedAt = time.Now()
	data, err := json.MarshalIndent(acc, "", "  ")
	if err != nil {
		return err
	}
	path := accountPath(d, acc.ScreenName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write account %s: %w", path, err)
	}
	slog.Debug("account saved", slog.String("user", acc.ScreenName))
	return nil
}

func loadAccount(dir, screenName string) (*Account, error) {
	data, err := os.ReadFile(accountPath(accountDir(dir), screenName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoAccount, screenName)
		}
		return nil, err
	}
	var acc Account
	if err := json.Unmarshal(data, &acc); err != nil {
		return nil, fmt.Errorf("parse account %s: %w", screenName, err)
	}
	if acc.Token.Token == "" || acc.Token.Secret == "" {
		return nil, fmt.Errorf("%w: %s has an empty token", ErrNoAccount, screenName)
	}
	return &acc, nil
}

func listAccounts(dir string) ([]string, error) {
	entries, err := os.ReadDir(accountDir(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".json")
		if !ok || e.IsDir() {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
