// Command twic is a terminal Twitter client: PIN login, home timeline,
// posting and retweeting, plus the entity extractor and request signer it
// is built on.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	twic "github.com/anatolykoptev/go-twic"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:           "twic",
	Short:         "Twitter timeline client",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("account", "", "Screen name of the stored account to use (env TWIC_ACCOUNT)")
}

func main() {
	loadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadEnv loads .env files from the working directory. Later files win.
func loadEnv() {
	for _, file := range []string{".env", ".env.local"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", file, err)
		}
	}
}

func setupLogging() {
	level := slog.LevelWarn
	if v := os.Getenv("TWIC_LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: invalid TWIC_LOG_LEVEL %q\n", v)
		}
	}
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newClient() (*twic.Client, error) {
	return twic.NewClient(twic.ConfigFromEnv())
}

// loadAccount picks the stored account named by --account or TWIC_ACCOUNT,
// or the only stored account if there is exactly one.
func loadAccount(cmd *cobra.Command, c *twic.Client) (*twic.Account, error) {
	name, _ := cmd.Flags().GetString("account")
	if name == "" {
		name = os.Getenv("TWIC_ACCOUNT")
	}
	if name == "" {
		names, err := c.Accounts()
		if err != nil {
			return nil, err
		}
		switch len(names) {
		case 0:
			return nil, fmt.Errorf("no stored account, run 'twic login' first")
		case 1:
			name = names[0]
		default:
			return nil, fmt.Errorf("several stored accounts (%s), pick one with --account", strings.Join(names, ", "))
		}
	}
	return c.LoadAccount(strings.TrimPrefix(name, "@"))
}

// inputText returns args joined by spaces, or stdin when there are none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
