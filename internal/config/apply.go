package config

import (
	"github.com/abhisek/tabuada/internal/llm"
	"github.com/abhisek/tabuada/internal/quiz"
)

// ApplyQuizDefaults overlays the [defaults] section on a quiz config.
// Only keys present in the file are applied.
func ApplyQuizDefaults(fc FileConfig, base quiz.Config) quiz.Config {
	d := fc.Defaults
	if d.Operations != nil {
		var ops []quiz.Operation
		for _, name := range *d.Operations {
			if op, ok := quiz.ParseOperation(name); ok {
				ops = append(ops, op)
			}
		}
		base.Operations = ops
	}
	if d.Tables != nil {
		base.Tables = append([]int(nil), *d.Tables...)
	}
	if d.Count != nil {
		base.TotalQuestions = *d.Count
	}
	if d.RepeatOnError != nil {
		base.RepeatOnError = *d.RepeatOnError
	}
	if d.Choices != nil {
		if *d.Choices {
			base.AnswerMode = quiz.ModeMultipleChoice
		} else {
			base.AnswerMode = quiz.ModeFreeEntry
		}
	}
	return base
}

// ApplyAI overlays the [ai] section on an llm config. The file is the
// lowest-priority source: environment variables, applied by the
// caller afterwards, win.
func ApplyAI(fc FileConfig, base llm.Config) llm.Config {
	ai := fc.AI
	if ai.Provider != nil {
		base.Provider = *ai.Provider
	}
	if ai.APIKey == nil {
		return base
	}
	key := *ai.APIKey
	switch base.Provider {
	case "openai":
		base.OpenAI.APIKey = key
		if ai.Model != nil {
			base.OpenAI.Model = *ai.Model
		}
		if ai.BaseURL != nil {
			base.OpenAI.BaseURL = *ai.BaseURL
		}
	case "gemini":
		base.Gemini.APIKey = key
		if ai.Model != nil {
			base.Gemini.Model = *ai.Model
		}
	default:
		base.Anthropic.APIKey = key
		if ai.Model != nil {
			base.Anthropic.Model = *ai.Model
		}
	}
	return base
}
