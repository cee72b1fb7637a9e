package export

import (
	"context"
	"log"
)

// Step is a single operation that populates part of an item. A failing step
// returns an error; the pipeline logs it and keeps going, so a misbehaving
// collaborator degrades the result instead of aborting the run.
//
// The item pointer lets steps accumulate their output in-place.
type Step[T any] func(ctx context.Context, item *T) error

// Pipeline applies a fixed sequence of steps to one item. It keeps the
// gather/validate sequence of the exporter declarative.
type Pipeline[T any] struct {
	steps []Step[T]
}

// NewPipeline constructs a Pipeline from the provided steps. Steps run in
// order.
func NewPipeline[T any](steps ...Step[T]) *Pipeline[T] {
	return &Pipeline[T]{steps: steps}
}

// Run applies every step to the item. Step errors are logged and do not
// prevent later steps from running.
func (p *Pipeline[T]) Run(ctx context.Context, item *T) {
	for _, step := range p.steps {
		if err := step(ctx, item); err != nil {
			log.Printf("Step failed: %v", err)
		}
	}
}
