// Package testutil provides a declarative scenario harness for exercising
// Vector semantics. Scenarios are YAML operation scripts with expected
// observable state after each step, so the same fixtures can drive
// conformance tests against any lifecycle configuration.
package testutil

import (
	"fmt"
	"slices"

	"github.com/comalice/vecx"
	"gopkg.in/yaml.v3"
)

// Step is one scripted operation plus the expectations to verify after it.
type Step struct {
	Op    string `yaml:"op"` // push, pushCopy, insert, emplace, erase, pop, set, reserve, resize, clone, destroy
	Index int    `yaml:"index"`
	Value int    `yaml:"value"`
	N     int    `yaml:"n"`

	Want    []int `yaml:"want"`              // expected contents after the step
	WantCap *int  `yaml:"wantCap,omitempty"` // expected capacity; nil skips the check
}

// Scenario is a named sequence of steps replayed against a fresh vector.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load parses a YAML scenario document.
func Load(data []byte) ([]Scenario, error) {
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(doc.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in document")
	}
	return doc.Scenarios, nil
}

// Runner replays steps against a vector and checks expectations.
type Runner struct {
	vec *vecx.Vector[int]
}

// NewRunner builds a runner around a fresh empty vector using the given
// lifecycle, or Plain when lc is nil.
func NewRunner(lc vecx.Lifecycle[int]) (*Runner, error) {
	opts := []vecx.Option[int]{}
	if lc != nil {
		opts = append(opts, vecx.WithLifecycle[int](lc))
	}
	v, err := vecx.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Runner{vec: v}, nil
}

// Vector exposes the vector under test.
func (r *Runner) Vector() *vecx.Vector[int] { return r.vec }

// Apply runs one step and verifies its expectations.
func (r *Runner) Apply(step Step) error {
	if err := r.perform(step); err != nil {
		return err
	}
	return r.verify(step)
}

// Run replays a whole scenario.
func (r *Runner) Run(sc Scenario) error {
	for i, step := range sc.Steps {
		if err := r.Apply(step); err != nil {
			return fmt.Errorf("scenario %q step %d (%s): %w", sc.Name, i, step.Op, err)
		}
	}
	return nil
}

func (r *Runner) perform(step Step) error {
	switch step.Op {
	case "push":
		return r.vec.PushBack(step.Value)
	case "pushCopy":
		val := step.Value
		return r.vec.PushBackCopy(&val)
	case "insert":
		_, err := r.vec.Insert(step.Index, step.Value)
		return err
	case "emplace":
		_, err := r.vec.Emplace(step.Index, func() (int, error) { return step.Value, nil })
		return err
	case "erase":
		_, err := r.vec.Erase(step.Index)
		return err
	case "pop":
		r.vec.PopBack()
		return nil
	case "set":
		r.vec.Set(step.Index, step.Value)
		return nil
	case "reserve":
		return r.vec.Reserve(step.N)
	case "resize":
		return r.vec.Resize(step.N)
	case "clone":
		// Swap in a deep copy; semantics must be indistinguishable.
		c, err := r.vec.Clone()
		if err != nil {
			return err
		}
		r.vec.Destroy()
		r.vec = c
		return nil
	case "destroy":
		r.vec.Destroy()
		return nil
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

func (r *Runner) verify(step Step) error {
	got := r.vec.AppendTo(nil)
	if !slices.Equal(got, step.Want) {
		// A nil Want means "expect empty"; slices.Equal treats nil and
		// empty alike, so only report genuine mismatches.
		return fmt.Errorf("contents = %v, want %v", got, step.Want)
	}
	if step.WantCap != nil && r.vec.Cap() != *step.WantCap {
		return fmt.Errorf("Cap = %d, want %d", r.vec.Cap(), *step.WantCap)
	}
	return nil
}
