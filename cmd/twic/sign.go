package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	twic "github.com/anatolykoptev/go-twic"
	"github.com/anatolykoptev/go-twic/oauth"
)

var signCmd = &cobra.Command{
	Use:   "sign METHOD URL [key=value...]",
	Short: "Print the OAuth signature base string and signature for a request",
	Long: `Sign a request with the consumer credentials from TWIC_CONSUMER_KEY and
TWIC_CONSUMER_SECRET and print what was signed. Nothing is sent.

Pin --timestamp and --nonce to reproduce a signature from another client.

Examples:
  twic sign GET https://api.twitter.com/1.1/statuses/home_timeline.json count=20
  twic sign POST https://api.twitter.com/1.1/statuses/update.json status="hello" \
      --token 10-abc --token-secret xyz --timestamp 1318622958 --nonce kYjzVBB8Y0`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := twic.ConfigFromEnv()
		signer := oauth.NewSigner(cfg.ConsumerKey, cfg.ConsumerSecret)
		if ts, _ := cmd.Flags().GetInt64("timestamp"); ts > 0 {
			signer.Now = func() time.Time { return time.Unix(ts, 0) }
		}
		if nonce, _ := cmd.Flags().GetString("nonce"); nonce != "" {
			signer.Nonce = func() string { return nonce }
		}

		var params oauth.Params
		for _, kv := range args[2:] {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("parameter %q: expected key=value", kv)
			}
			params = append(params, oauth.Param{Key: k, Value: v})
		}

		var tok oauth.Token
		tok.Token, _ = cmd.Flags().GetString("token")
		tok.Secret, _ = cmd.Flags().GetString("token-secret")

		signed, err := signer.Sign(oauth.NewRequest(args[0], args[1], params...), tok)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]string{
				"base_string": signed.BaseString,
				"signature":   signed.Signature,
				"target":      signed.Target(),
				"params":      signed.Params.Encode(),
			})
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Base string: %s\n", signed.BaseString)
		fmt.Fprintf(w, "Signature:   %s\n", signed.Signature)
		if signed.Body() {
			fmt.Fprintf(w, "Body:        %s\n", signed.Params.Encode())
		} else {
			fmt.Fprintf(w, "URL:         %s\n", signed.Target())
		}
		return nil
	},
}

func init() {
	signCmd.Flags().String("token", "", "User access token")
	signCmd.Flags().String("token-secret", "", "User access token secret")
	signCmd.Flags().Int64("timestamp", 0, "Fixed oauth_timestamp (Unix seconds)")
	signCmd.Flags().String("nonce", "", "Fixed oauth_nonce")
	rootCmd.AddCommand(signCmd)
}
