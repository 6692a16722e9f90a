package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/tabuada/internal/config"
	"github.com/abhisek/tabuada/internal/llm"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Show and test the AI narrative configuration",
}

var aiCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Send a test request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := loadFileConfig(cmd)
		if err != nil {
			return err
		}

		cfg := config.ApplyAI(fc, llm.ConfigFromEnv())
		if cfg.Validate() != nil {
			discovered, ok := llm.Discover()
			if !ok {
				fmt.Println("No provider configured. Set an API key (e.g. GEMINI_API_KEY,")
				fmt.Println("OPENAI_API_KEY or ANTHROPIC_API_KEY) or add an [ai] section to")
				fmt.Println("the config file. Round reports will use the built-in rules.")
				return nil
			}
			cfg = discovered
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		fmt.Printf("Provider: %s\nModel:    %s\n", cfg.Provider, provider.ModelID())

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			Prompt:    "Reply with the single word: ok",
			MaxTokens: 8,
		})
		if err != nil {
			return fmt.Errorf("test request failed: %w", err)
		}

		fmt.Printf("Latency:  %s\nReply:    %s\n", time.Since(start).Round(time.Millisecond), resp.Content)
		return nil
	},
}

func init() {
	aiCmd.AddCommand(aiCheckCmd)
}
