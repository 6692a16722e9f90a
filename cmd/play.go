package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tabuada/internal/analysis"
	"github.com/abhisek/tabuada/internal/app"
	"github.com/abhisek/tabuada/internal/config"
	"github.com/abhisek/tabuada/internal/llm"
	"github.com/abhisek/tabuada/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice round right away, skipping the setup form",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

func init() {
	playCmd.Flags().StringSlice("ops", nil, "Operations to practice (add, subtract, multiply, divide)")
	playCmd.Flags().IntSlice("tables", nil, "Tables to practice (1-10)")
	playCmd.Flags().Int("count", 0, "Number of questions per round")
	playCmd.Flags().Bool("repeat-on-error", false, "Ask a missed question again until it is answered correctly")
	playCmd.Flags().Bool("choices", false, "Answer by picking from alternatives instead of typing")
}

// runApp assembles the quiz defaults and services, then starts the TUI.
func runApp(cmd *cobra.Command, autoStart bool) error {
	fc, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}

	defaults := config.ApplyQuizDefaults(fc, builtinDefaults())
	defaults = applyFlags(cmd, defaults)

	opts := app.Options{Defaults: defaults, AutoStart: autoStart}

	// Narrative generation is optional; without a provider the
	// rule-based report is used.
	provider := buildProvider(cmd, fc)
	opts.Analyzer = analysis.NewService(provider)

	return app.Run(opts)
}

// builtinDefaults is the setup form state before any config or flags.
func builtinDefaults() quiz.Config {
	return quiz.Config{
		Operations:     []quiz.Operation{quiz.OpMultiply},
		Tables:         []int{2, 3, 4, 5, 6, 7, 8, 9},
		TotalQuestions: 10,
		RepeatOnError:  true,
		AnswerMode:     quiz.ModeFreeEntry,
	}
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	fc, err := config.LoadConfig(path)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("load config: %w", err)
	}
	return fc, nil
}

func applyFlags(cmd *cobra.Command, cfg quiz.Config) quiz.Config {
	flags := cmd.Flags()

	if flags.Changed("ops") {
		names, _ := flags.GetStringSlice("ops")
		var ops []quiz.Operation
		for _, name := range names {
			if op, ok := quiz.ParseOperation(name); ok {
				ops = append(ops, op)
			} else {
				fmt.Fprintf(os.Stderr, "Ignoring unknown operation %q\n", name)
			}
		}
		cfg.Operations = ops
	}
	if flags.Changed("tables") {
		cfg.Tables, _ = flags.GetIntSlice("tables")
	}
	if flags.Changed("count") {
		cfg.TotalQuestions, _ = flags.GetInt("count")
	}
	if flags.Changed("repeat-on-error") {
		cfg.RepeatOnError, _ = flags.GetBool("repeat-on-error")
	}
	if flags.Changed("choices") {
		if mc, _ := flags.GetBool("choices"); mc {
			cfg.AnswerMode = quiz.ModeMultipleChoice
		} else {
			cfg.AnswerMode = quiz.ModeFreeEntry
		}
	}
	return cfg
}

// buildProvider resolves the text-generation backend: config file over
// TABUADA_* env vars, falling back to the standard API key env vars.
// Returns nil when nothing is configured.
func buildProvider(cmd *cobra.Command, fc config.FileConfig) llm.Provider {
	cfg := config.ApplyAI(fc, llm.ConfigFromEnv())

	if cfg.Validate() != nil {
		discovered, ok := llm.Discover()
		if !ok {
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI narrative unavailable:", err)
		return nil
	}
	return provider
}
