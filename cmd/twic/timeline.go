package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	twic "github.com/anatolykoptev/go-twic"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the home timeline",
	Long: `Show the newest tweets in the account's home timeline, oldest first.

With --follow the timeline is polled until interrupted and new tweets are
printed as they arrive. The poll interval comes from TWIC_POLL_INTERVAL.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := newClient()
		if err != nil {
			return err
		}
		acc, err := loadAccount(cmd, c)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		sinceID, _ := cmd.Flags().GetString("since")
		asHTML, _ := cmd.Flags().GetBool("html")
		follow, _ := cmd.Flags().GetBool("follow")

		show := func(tweets []*twic.Tweet) error {
			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), tweets)
			}
			for _, tw := range tweets {
				printTweet(cmd.OutOrStdout(), tw, asHTML)
			}
			return nil
		}

		if follow {
			err := c.WatchHomeTimeline(ctx, acc, sinceID, show)
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		tweets, err := c.HomeTimeline(ctx, acc, sinceID, count)
		if err != nil {
			return err
		}
		// Oldest first, like --follow.
		slices.Reverse(tweets)
		return show(tweets)
	},
}

var tweetCmd = &cobra.Command{
	Use:   "tweet [text...]",
	Short: "Post a tweet",
	Long: `Post a tweet as the selected account. Text is read from the arguments,
or from stdin when there are none.

A reply starts with the parent author's @mention, added when the text does
not already mention them.

Examples:
  twic tweet "hello from the terminal"
  twic tweet --reply-to 1234567890 "agreed"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		acc, err := loadAccount(cmd, c)
		if err != nil {
			return err
		}
		replyTo, _ := cmd.Flags().GetString("reply-to")

		var tw *twic.Tweet
		if replyTo != "" {
			parent, err := c.GetTweet(cmd.Context(), acc, replyTo)
			if err != nil {
				return fmt.Errorf("reply-to %s: %w", replyTo, err)
			}
			tw, err = c.Reply(cmd.Context(), acc, parent, status)
			if err != nil {
				return err
			}
		} else {
			tw, err = c.UpdateStatus(cmd.Context(), acc, status, "")
			if err != nil {
				return err
			}
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), tw)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Posted %s\n", tw.ID)
		return nil
	},
}

var retweetCmd = &cobra.Command{
	Use:   "retweet ID",
	Short: "Retweet a tweet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		acc, err := loadAccount(cmd, c)
		if err != nil {
			return err
		}
		tw, err := c.Retweet(cmd.Context(), acc, args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), tw)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Retweeted %s as %s\n", args[0], tw.ID)
		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user SCREEN_NAME",
	Short: "Show a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		acc, err := loadAccount(cmd, c)
		if err != nil {
			return err
		}
		u, err := c.GetUser(cmd.Context(), acc, args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), u)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "@%s (%s)\n  joined %s\n  %d tweets, %d followers, %d following\n",
			u.ScreenName, u.DisplayName, u.CreatedAt.Format("Jan 2006"), u.TweetCount, u.Followers, u.Following)
		return nil
	},
}

func printTweet(w io.Writer, tw *twic.Tweet, asHTML bool) {
	author := "?"
	if tw.Author != nil {
		author = "@" + tw.Author.ScreenName
	}
	body := tw.Text
	if asHTML {
		body = tw.HTML()
	}
	if tw.Retweeted != nil && tw.Retweeted.Author != nil {
		author += " RT @" + tw.Retweeted.Author.ScreenName
	}
	fmt.Fprintf(w, "%s  %s  [%s]\n", author, tw.CreatedAt.Local().Format(time.DateTime), tw.ID)
	fmt.Fprintf(w, "  %s\n\n", strings.ReplaceAll(body, "\n", "\n  "))
}

func init() {
	timelineCmd.Flags().IntP("count", "n", 20, "Number of tweets to fetch (max 200)")
	timelineCmd.Flags().String("since", "", "Only show tweets newer than this ID")
	timelineCmd.Flags().BoolP("follow", "f", false, "Keep polling for new tweets")
	timelineCmd.Flags().Bool("html", false, "Render tweet text as linked HTML")
	tweetCmd.Flags().String("reply-to", "", "ID of the tweet to reply to")
	rootCmd.AddCommand(timelineCmd, tweetCmd, retweetCmd, userCmd)
}
