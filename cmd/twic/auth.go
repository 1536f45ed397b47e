package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	twic "github.com/anatolykoptev/go-twic"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize an account with a PIN and store its token",
	Long: `Start the PIN-based OAuth flow: open the printed URL, authorize the
application, then paste the PIN shown by Twitter. The resulting access token
is stored under TWIC_ACCOUNT_DIR (default ~/.go-twic/accounts).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := newClient()
		if err != nil {
			return err
		}

		reqTok, err := c.RequestToken(ctx)
		if err != nil {
			return fmt.Errorf("request token: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Open this URL and authorize the application:\n\n  %s\n\n", twic.AuthorizeURL(reqTok))
		fmt.Fprint(w, "PIN: ")

		pin, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && strings.TrimSpace(pin) == "" {
			return fmt.Errorf("read PIN: %w", err)
		}

		acc, err := c.AccessToken(ctx, reqTok, pin)
		if err != nil {
			return fmt.Errorf("access token: %w", err)
		}
		if err := c.SaveAccount(acc); err != nil {
			return err
		}
		fmt.Fprintf(w, "Logged in as @%s (%s)\n", acc.ScreenName, acc.UserID)
		return nil
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List stored accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		names, err := c.Accounts()
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), names)
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No stored accounts. Run 'twic login'.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), "@"+name)
		}
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Verify the stored token and show the account's profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		acc, err := loadAccount(cmd, c)
		if err != nil {
			return err
		}
		u, err := c.VerifyCredentials(cmd.Context(), acc)
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), u)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "@%s (%s)\n  %d tweets, %d followers, %d following\n",
			u.ScreenName, u.DisplayName, u.TweetCount, u.Followers, u.Following)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, accountsCmd, whoamiCmd)
}
