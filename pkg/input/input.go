// Package input routes terminal events through chains of behaviors.
// Dispatch is synchronous and deterministic: a chain offers the event
// to each behavior in declaration order until one consumes it, and
// behaviors after the first consumer never run.
package input

import "github.com/odvcencio/tessera/pkg/terminal"

// Input is a single terminal event on its way through the widget tree.
type Input struct {
	Event terminal.Event
}

// Behavior reacts to an input and reports whether it consumed it.
type Behavior interface {
	HandleInput(Input) bool
}

// BehaviorFunc adapts a function to the Behavior interface.
type BehaviorFunc func(Input) bool

func (f BehaviorFunc) HandleInput(in Input) bool {
	return f(in)
}

// Bind runs action when the input equals one of the given events.
func Bind(action func(), events ...terminal.Event) Behavior {
	return BehaviorFunc(func(in Input) bool {
		for _, ev := range events {
			if in.Event == ev {
				action()
				return true
			}
		}
		return false
	})
}

// Chain tracks an input moving through a sequence of behaviors. Chains
// are values; every step returns the updated chain.
type Chain struct {
	input    Input
	consumed bool
}

// Chain starts a behavior chain with this input.
func (in Input) Chain(b Behavior) Chain {
	return Chain{input: in}.Chain(b)
}

// Chain offers the input to b unless a previous behavior consumed it.
// A nil behavior is a no-op link.
func (c Chain) Chain(b Behavior) Chain {
	if !c.consumed && b != nil {
		c.consumed = b.HandleInput(c.input)
	}
	return c
}

// AndThen always calls f with the consumption outcome so far. It does
// not alter propagation.
func (c Chain) AndThen(f func(consumed bool)) Chain {
	f(c.consumed)
	return c
}

// IfConsumed calls f when an earlier behavior consumed the input.
func (c Chain) IfConsumed(f func()) Chain {
	if c.consumed {
		f()
	}
	return c
}

// IfNotConsumed calls f when the input is still unconsumed. The input
// remains available to later links.
func (c Chain) IfNotConsumed(f func()) Chain {
	if !c.consumed {
		f()
	}
	return c
}

// Consumed reports whether any behavior in the chain took the input.
func (c Chain) Consumed() bool {
	return c.consumed
}
