package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/prreview/internal/providers"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported LLM providers and their settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, spec := range providers.Catalog {
			name := spec.Name
			if name == providers.DefaultProvider {
				name += " (default)"
			}
			fmt.Fprintf(out, "%s:\n", name)
			fmt.Fprintf(out, "  endpoint:      %s\n", spec.DefaultBaseURL)
			fmt.Fprintf(out, "  default model: %s\n", spec.DefaultModel)
			fmt.Fprintf(out, "  environment:   %s\n", strings.Join([]string{spec.APIKeyEnv, spec.ModelEnv, spec.BaseURLEnv}, ", "))
			fmt.Fprintln(out, "  models:")
			for _, m := range spec.Models {
				fmt.Fprintf(out, "    - %s\n", m)
			}
			fmt.Fprintln(out)
		}
	},
}

var providersDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the configured provider's credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fail(cmd, err)
		}
		if err := cfg.RequireProviderKey(); err != nil {
			return fail(cmd, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Checking %s (%s)...\n", cfg.Provider, cfg.Model)

		p, err := providers.New(cfg.Provider, cfg.Model, cfg.APIKey(), cfg.BaseURL())
		if err != nil {
			return fail(cmd, err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		_, err = p.Review(ctx, providers.ReviewRequest{
			SystemPrompt: "Respond with exactly: ok",
			UserPrompt:   "ping",
			MaxTokens:    10,
		})
		if err != nil {
			if providers.IsAuthError(err) {
				return fail(cmd, fmt.Errorf("%s rejected the API key: %w", cfg.Provider, err))
			}
			return fail(cmd, err)
		}

		fmt.Fprintf(out, "OK: %s is configured and responding\n", cfg.Provider)
		return nil
	},
}

func init() {
	providersCmd.AddCommand(providersDoctorCmd)
	providersDoctorCmd.Flags().StringVar(&flagProvider, "provider", "", "Provider to check")
	providersDoctorCmd.Flags().StringVar(&flagModel, "model", "", "Model to check")
}
