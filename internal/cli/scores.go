package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	var (
		user   string
		won    bool
		lost   bool
		newest bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List recorded scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			if won && lost {
				return fmt.Errorf("--won and --lost are mutually exclusive")
			}

			query := url.Values{}
			if won {
				query.Set("won", "true")
			}
			if lost {
				query.Set("won", "false")
			}
			if newest {
				query.Set("newest", "true")
			}
			if limit > 0 {
				query.Set("limit", strconv.Itoa(limit))
			}

			path := "/api/v1/scores"
			if user != "" {
				path = fmt.Sprintf("/api/v1/users/%s/scores", user)
			}
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var result []Score

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Only scores for this user")
	cmd.Flags().BoolVar(&won, "won", false, "Only winning games")
	cmd.Flags().BoolVar(&lost, "lost", false, "Only losing games")
	cmd.Flags().BoolVar(&newest, "newest", false, "Most recent first")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of scores")

	return cmd
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show user rankings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Standing

			if err := client.Get("/api/v1/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
