package judge

import (
	"bytes"
	"text/template"
)

const judgeSystemPrompt = `You are an expert programming instructor grading a practice kata submission. Score the learner's work against the rubric criteria.

Instructions:
- Score every rubric criterion from 0 to 100. Use the exact criterion names given.
- totalScore is your overall assessment of the submission, 0 to 100. It is not required to be the average of the criterion scores.
- Judge substance, not style. A correct solution expressed plainly outscores a polished wrong one.
- Feedback must be 2-4 sentences: what was done well, then the single most important improvement.
- Do not reveal hidden test cases or full solutions in feedback.`

var judgeUserTemplate = template.Must(template.New("judge").Parse(`Kata: {{.Kata.Title}} ({{.Kata.Type}}, {{.Kata.Difficulty}})
{{if .Kata.Language}}Language: {{.Kata.Language}}
{{end}}
Task statement:
{{.Statement}}

Rubric criteria to score:
{{range .Kata.Rubric.Keys}}- {{.}}
{{end}}
Learner's submission:
{{.Answer}}`))

func buildJudgePrompt(in Input) (string, error) {
	var buf bytes.Buffer
	if err := judgeUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
