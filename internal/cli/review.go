package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/prreview/internal/agent"
	"github.com/dshills/prreview/internal/config"
	"github.com/dshills/prreview/internal/event"
	"github.com/dshills/prreview/internal/gitctx"
	"github.com/dshills/prreview/internal/github"
	"github.com/dshills/prreview/internal/output"
	"github.com/spf13/cobra"
)

// Shared flags
var (
	flagDryRun    bool
	flagProvider  string
	flagModel     string
	flagOwner     string
	flagRepo      string
	flagEventPath string
	flagFormat    string
	flagOut       string
)

const envEventPath = "GITHUB_EVENT_PATH"

var errNoPRNumber = errors.New("no pull request number: pass one as an argument, run from a pull_request event, or run interactively")

// Test seams.
var (
	detectRepo      = gitctx.Origin
	stdinIsTerminal = func() bool { return output.IsTerminal(os.Stdin) }
)

var reviewCmd = &cobra.Command{
	Use:   "review [pr-number]",
	Short: "Review a pull request and append the review to its description",
	Long: "Fetch a pull request's title, description, files and patches, ask the configured LLM provider " +
		"for a review, and append it under an \"## AI Review\" heading in the pull request description.\n\n" +
		"Without a pr-number the number is taken from the GitHub Actions event payload ($" + envEventPath + "), " +
		"defaults to 1 in dry-run mode, or is asked for interactively.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var number int
		if len(args) == 1 {
			n, err := parseNumber(args[0])
			if err != nil {
				return usage(cmd, err)
			}
			number = n
		}
		if _, err := output.GetWriter(flagFormat, false); err != nil {
			return usage(cmd, err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return fail(cmd, err)
		}

		number, err = resolvePRNumber(cmd, cfg, number)
		if err != nil {
			return fail(cmd, err)
		}
		return runReview(cmd, cfg, number)
	},
}

func init() {
	reviewCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Use placeholder data; no GitHub or LLM calls are made")
	reviewCmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (openai, deepseek)")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	addRepoFlags(reviewCmd)
	reviewCmd.Flags().StringVar(&flagEventPath, "event-path", "", "GitHub Actions event payload (default $"+envEventPath+")")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
}

func addRepoFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagOwner, "owner", "", "Repository owner (default $REPO_OWNER)")
	cmd.Flags().StringVar(&flagRepo, "repo", "", "Repository name (default $REPO_NAME)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagOwner != "" {
		m["owner"] = flagOwner
	}
	if flagRepo != "" {
		m["repo"] = flagRepo
	}
	if flagDryRun {
		m["dryRun"] = "true"
	}
	return m
}

// loadConfig resolves the effective configuration. When no repository is
// configured anywhere, the origin remote of the working directory is used.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(getenv, buildOverrides())
	if err != nil {
		return config.Config{}, err
	}
	if cfg.DryRun || (cfg.Owner != "" && cfg.Repo != "") {
		return cfg, nil
	}
	owner, repo, err := detectRepo("")
	if err != nil {
		logger.Debug("repository not detected from git", "error", err)
		return cfg, nil
	}
	if cfg.Owner == "" {
		cfg.Owner = owner
	}
	if cfg.Repo == "" {
		cfg.Repo = repo
	}
	logger.Debug("repository detected from git remote", "repo", cfg.Repository())
	return cfg, nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid PR number %q", s)
	}
	return n, nil
}

// resolvePRNumber picks the pull request to review: the argument, then the
// event payload, then 1 for a dry run, then an interactive prompt.
func resolvePRNumber(cmd *cobra.Command, cfg config.Config, arg int) (int, error) {
	if arg > 0 {
		return arg, nil
	}

	path := flagEventPath
	if path == "" {
		path = getenv(envEventPath)
	}
	if path != "" {
		n, err := event.PRNumberFromFile(path)
		switch {
		case err == nil:
			logger.Debug("PR number from event payload", "path", path, "pr", n)
			return n, nil
		case errors.Is(err, event.ErrNoPullRequest), errors.Is(err, fs.ErrNotExist):
			logger.Debug("no pull request in event payload", "path", path, "error", err)
		default:
			return 0, err
		}
	}

	if cfg.DryRun {
		return 1, nil
	}
	if stdinIsTerminal() {
		return promptPRNumber(cmd, cfg)
	}
	return 0, errNoPRNumber
}

// promptPRNumber lists the open pull requests and reads a number from stdin.
func promptPRNumber(cmd *cobra.Command, cfg config.Config) (int, error) {
	client, err := newGitHubClient(cfg)
	if err != nil {
		return 0, err
	}
	prs, err := client.ListOpen(cmd.Context())
	if err != nil {
		return 0, err
	}
	if len(prs) == 0 {
		return 0, fmt.Errorf("no open pull requests in %s", cfg.Repository())
	}

	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "Open pull requests in %s:\n", cfg.Repository())
	printPulls(w, prs)
	fmt.Fprint(w, "\nEnter PR number to review: ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading PR number: %w", err)
	}
	return parseNumber(line)
}

func newGitHubClient(cfg config.Config) (*github.Client, error) {
	if err := cfg.RequirePlatform(); err != nil {
		return nil, err
	}
	client, err := github.NewClient(cfg.GitHubToken, cfg.GitHubAPIURL, cfg.Owner, cfg.Repo)
	if err != nil {
		return nil, err
	}
	client.SetLogger(logger)
	return client, nil
}

func runReview(cmd *cobra.Command, cfg config.Config, number int) error {
	// Keep stdout parseable when JSON goes there.
	var observe io.Writer = cmd.OutOrStdout()
	if flagFormat == "json" && flagOut == "" {
		observe = cmd.ErrOrStderr()
	}

	if cfg.DryRun {
		logger.Info("starting dry run", "pr", number, "provider", cfg.Provider, "model", cfg.Model)
	} else {
		logger.Info("starting review", "repo", cfg.Repository(), "pr", number, "provider", cfg.Provider, "model", cfg.Model)
	}

	sess, err := agent.NewSession(cfg, agent.WithLogger(logger), agent.WithOutput(observe))
	if err != nil {
		return fail(cmd, err)
	}
	res, err := sess.Run(cmd.Context(), number)
	if err != nil {
		return fail(cmd, err)
	}

	if err := output.WriteResult(cmd.OutOrStdout(), res, flagFormat, flagOut); err != nil {
		return fail(cmd, fmt.Errorf("writing output: %w", err))
	}

	if cfg.DryRun {
		fmt.Fprintln(cmd.ErrOrStderr(), "This was a dry run. No APIs were called.")
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "PR #%d reviewed using %s (%s); description updated.\n",
			number, strings.ToUpper(cfg.Provider), cfg.Model)
	}
	return nil
}
