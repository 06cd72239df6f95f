package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asmanlearning/asman/internal/llm"
)

func newLLMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llm",
		Short: "Inspect the generative backend configuration",
	}
	cmd.AddCommand(newLLMStatusCmd())
	cmd.AddCommand(newLLMPricingCmd())
	return cmd
}

func newLLMStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which backend and model lesson generation uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close(ctx)

			out := cmd.OutOrStdout()
			resolved, ok := env.cfg.LLM.Resolved()
			if !ok {
				fmt.Fprintln(out, "Provider:  none (offline lesson packs only)")
				fmt.Fprintln(out, "Set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY to enable AI generation.")
				return nil
			}

			provider, err := newProvider(ctx, resolved, env.log)
			if err != nil {
				fmt.Fprintf(out, "Provider:  %s (not usable: %v)\n", resolved.Provider, err)
				return nil
			}
			fmt.Fprintf(out, "Provider:  %s\n", resolved.Provider)
			fmt.Fprintf(out, "Model:     %s\n", provider.ModelID())
			fmt.Fprintf(out, "Timeout:   %s\n", resolved.Timeout)
			fmt.Fprintf(out, "MaxTokens: %d\n", env.cfg.Lessons.MaxTokens)
			return nil
		},
	}
}

func newLLMPricingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pricing [model]",
		Short: "Estimate the cost of one lesson pack",
		Long: `Print per-million-token pricing for a model and the worst-case cost of one
lesson pack, assuming the prompt size given by --prompt-tokens and a response
that uses all of lessons.max_tokens. Without an argument the configured
model is used. Aliases such as gemini-flash are accepted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close(ctx)

			out := cmd.OutOrStdout()
			if all, _ := cmd.Flags().GetBool("all"); all {
				fmt.Fprintf(out, "%-28s  %10s  %10s\n", "Model", "In $/1M", "Out $/1M")
				for _, id := range llm.PricedModels() {
					c := llm.LookupCost(id)
					fmt.Fprintf(out, "%-28s  %10.3f  %10.3f\n", id, c.InputPerMTok, c.OutputPerMTok)
				}
				return nil
			}

			model := ""
			if len(args) == 1 {
				model = args[0]
			} else {
				provider, err := newProvider(ctx, env.cfg.LLM, env.log)
				if err != nil {
					return fmt.Errorf("no model given and none configured: %w", err)
				}
				model = provider.ModelID()
			}

			cost := llm.LookupCost(model)
			if cost == nil {
				fmt.Fprintf(out, "No pricing data for %q.\n", model)
				return nil
			}

			promptTokens, _ := cmd.Flags().GetInt("prompt-tokens")
			maxTokens := env.cfg.Lessons.MaxTokens
			fmt.Fprintf(out, "Model:           %s\n", model)
			fmt.Fprintf(out, "Input:           $%.2f / 1M tokens\n", cost.InputPerMTok)
			fmt.Fprintf(out, "Output:          $%.2f / 1M tokens\n", cost.OutputPerMTok)
			fmt.Fprintf(out, "Per lesson pack: up to $%.4f (%d in, %d out)\n", cost.Cost(promptTokens, maxTokens), promptTokens, maxTokens)
			return nil
		},
	}
	cmd.Flags().Int("prompt-tokens", 1500, "Estimated prompt size in tokens")
	cmd.Flags().Bool("all", false, "List every model with known pricing")
	return cmd
}
