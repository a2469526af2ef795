package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/prreview/internal/github"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open pull requests of the configured repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFormat != "" && flagFormat != "text" && flagFormat != "json" {
			return usage(cmd, fmt.Errorf("unsupported format: %q (supported: text, json)", flagFormat))
		}

		cfg, err := loadConfig()
		if err != nil {
			return fail(cmd, err)
		}
		client, err := newGitHubClient(cfg)
		if err != nil {
			return fail(cmd, err)
		}
		prs, err := client.ListOpen(cmd.Context())
		if err != nil {
			return fail(cmd, err)
		}

		out := cmd.OutOrStdout()
		if flagFormat == "json" {
			if prs == nil {
				prs = []github.PullSummary{}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(prs); err != nil {
				return fail(cmd, err)
			}
			return nil
		}
		if len(prs) == 0 {
			fmt.Fprintf(out, "No open pull requests in %s\n", cfg.Repository())
			return nil
		}
		printPulls(out, prs)
		return nil
	},
}

func init() {
	addRepoFlags(listCmd)
	listCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
}

func printPulls(w io.Writer, prs []github.PullSummary) {
	for _, pr := range prs {
		fmt.Fprintf(w, "  #%d: %s (@%s)\n", pr.Number, pr.Title, pr.Author)
	}
}
