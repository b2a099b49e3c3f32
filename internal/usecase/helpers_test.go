package usecase_test

import (
	"io"
	"time"

	"github.com/iho/goexpense/internal/domain"
)

// scriptedConsole answers prompts from a fixed script and captures output.
type scriptedConsole struct {
	answers []string
	prompts []string
	lines   []string
}

func newScriptedConsole(answers ...string) *scriptedConsole {
	return &scriptedConsole{answers: answers}
}

func (c *scriptedConsole) Prompt(label string) (string, error) {
	c.prompts = append(c.prompts, label)
	if len(c.answers) == 0 {
		return "", io.EOF
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func (c *scriptedConsole) Print(line string) {
	c.lines = append(c.lines, line)
}

type fixedClock struct {
	date domain.Date
}

func (c fixedClock) Today() domain.Date {
	return c.date
}

func mustDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

var today = domain.NewDate(time.Date(2024, time.May, 17, 9, 30, 0, 0, time.UTC))

type countingRecorder struct {
	added   int
	saved   int
	invalid map[string]int
	reports map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{invalid: map[string]int{}, reports: map[string]int{}}
}

func (r *countingRecorder) ExpenseAdded()              { r.added++ }
func (r *countingRecorder) InvalidInput(kind string)   { r.invalid[kind]++ }
func (r *countingRecorder) StoreSaved()                { r.saved++ }
func (r *countingRecorder) ReportRendered(kind string) { r.reports[kind]++ }
