package analysis

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"
)

const narrativeSystemPrompt = `You are a warm, encouraging math tutor writing a short report for a child who just finished a times-tables practice round.

Instructions:
- Write in simple, positive language a child can read. Celebrate what went well before mentioning mistakes.
- Point out the specific operations or tables with the most errors, if any.
- Comment briefly on answer speed.
- End with one or two concrete, playful practice suggestions.
- Use markdown: "##" headings, **bold**, *italics* and "-" lists only.
- Keep the whole report under 200 words. Never invent numbers that are not in the data.`

var narrativeUserTemplate = template.Must(template.New("narrative").Parse(`Practice round results:

Score: {{.Score}}%
Correct answers: {{.CorrectCount}} of {{.TotalAttempts}}
Total time: {{.Elapsed}}
Average time per answer: {{.AverageResponse}}
Operations practiced: {{.Operations}}
Tables practiced: {{.Tables}}
{{if .ErrorsByOperation}}
Errors by operation:
{{range .ErrorsByOperation}}- {{.}}
{{end}}{{end}}{{if .ErrorsByTable}}Errors by table:
{{range .ErrorsByTable}}- {{.}}
{{end}}{{end}}{{if .WrongAnswers}}Missed questions:
{{range .WrongAnswers}}- {{.}}
{{end}}{{end}}`))

// promptData is the flattened, pre-formatted view of a Snapshot the
// template renders. Everything is stringified here so the template
// stays dumb.
type promptData struct {
	Score             int
	CorrectCount      int
	TotalAttempts     int
	Elapsed           string
	AverageResponse   string
	Operations        string
	Tables            string
	ErrorsByOperation []string
	ErrorsByTable     []string
	WrongAnswers      []string
}

func buildNarrativePrompt(snap Snapshot) (string, error) {
	data := promptData{
		Score:           snap.Score,
		CorrectCount:    snap.CorrectCount,
		TotalAttempts:   snap.TotalAttempts,
		Elapsed:         snap.Elapsed.Round(time.Second).String(),
		AverageResponse: fmt.Sprintf("%.1fs", snap.AverageResponse.Seconds()),
		Tables:          joinInts(snap.Tables),
	}

	labels := make([]string, len(snap.Operations))
	for i, op := range snap.Operations {
		labels[i] = op.Label()
	}
	data.Operations = strings.Join(labels, ", ")

	// Iterate the configured order so the prompt is deterministic.
	for _, op := range snap.Operations {
		if n := snap.ErrorsByOperation[op]; n > 0 {
			data.ErrorsByOperation = append(data.ErrorsByOperation, fmt.Sprintf("%s: %d wrong", op.Label(), n))
		}
	}
	for _, t := range snap.Tables {
		if n := snap.ErrorsByTable[t]; n > 0 {
			data.ErrorsByTable = append(data.ErrorsByTable, fmt.Sprintf("table of %d: %d wrong", t, n))
		}
	}
	for _, w := range snap.WrongAnswers {
		data.WrongAnswers = append(data.WrongAnswers, fmt.Sprintf("%q answered %d, correct answer %d", w.Question, w.Given, w.Correct))
	}

	var buf bytes.Buffer
	if err := narrativeUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
