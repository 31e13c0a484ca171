// Package pipeline chains text transformations and logs what each one did.
package pipeline

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// Step is one transformation applied by a Processor.
type Step interface {
	Name() string
	Apply(text string) string
}

// Processor runs a fixed sequence of steps.
type Processor struct {
	logger *zap.Logger
	steps  []Step
}

// New creates a Processor. A nil logger disables logging.
func New(logger *zap.Logger, steps ...Step) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{logger: logger, steps: steps}
}

// Add appends steps to the end of the sequence.
func (p *Processor) Add(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Len reports the number of steps.
func (p *Processor) Len() int {
	return len(p.steps)
}

// Run applies every step in order and returns the final text.
func (p *Processor) Run(text string) string {
	for _, step := range p.steps {
		before := text
		text = step.Apply(text)
		p.logger.Debug("step applied",
			zap.String("step", step.Name()),
			zap.Int("input_runes", utf8.RuneCountInString(before)),
			zap.Int("output_runes", utf8.RuneCountInString(text)),
			zap.Bool("changed", before != text))
	}
	return text
}
