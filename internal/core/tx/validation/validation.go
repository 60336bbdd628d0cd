// Package validation implements the checks every account passes before a
// ledger transition writes to it.
//
// A Chain is evaluated in order and stops at the first failing check, so the
// error a caller sees is always that of the earliest violated condition.
package validation

import (
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/account"
)

// Check is a single condition on an account.
type Check interface {
	Name() string
	Check(a *account.Info) error
}

// Chain is an ordered list of checks.
type Chain []Check

// Run applies each check in order and returns the first failure, annotated
// with the check name. Later checks are not evaluated.
func (c Chain) Run(a *account.Info) error {
	for _, check := range c {
		if err := check.Check(a); err != nil {
			return fmt.Errorf("%s: %w", check.Name(), err)
		}
	}
	return nil
}

// Then returns a new chain with more checks appended.
func (c Chain) Then(checks ...Check) Chain {
	out := make(Chain, 0, len(c)+len(checks))
	out = append(out, c...)
	return append(out, checks...)
}

// Names lists the check names in evaluation order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, check := range c {
		names[i] = check.Name()
	}
	return names
}

// CheckFunc adapts a function to the Check interface.
type CheckFunc struct {
	name string
	fn   func(a *account.Info) error
}

// NewCheck builds a named Check from fn.
func NewCheck(name string, fn func(a *account.Info) error) CheckFunc {
	return CheckFunc{name: name, fn: fn}
}

func (c CheckFunc) Name() string {
	return c.name
}

func (c CheckFunc) Check(a *account.Info) error {
	return c.fn(a)
}

// Signer requires a signing account that exists.
func Signer() Chain {
	return Chain{IsSigner(), Exists()}
}

// Writable requires a writable account that exists.
func Writable() Chain {
	return Chain{IsWritable(), Exists()}
}

// Owned requires an existing account owned by program.
func Owned(program common.Address) Chain {
	return Chain{OwnerIs(program), Exists()}
}
