package nativewindow

import (
	"fmt"
	"strings"
)

// Policy decides what a window does with input it cannot translate.
type Policy int

const (
	// PolicyFail returns the *UnsupportedError to the caller.
	PolicyFail Policy = iota
	// PolicySkip logs the error and reads the next event.
	PolicySkip
	// PolicyPanic panics with the error.
	PolicyPanic
)

var policyNames = []string{
	PolicyFail:  "fail",
	PolicySkip:  "skip",
	PolicyPanic: "panic",
}

func (p Policy) String() string {
	if p >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses "fail", "skip" or "panic". An empty name is PolicyFail.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PolicyFail, nil
	}
	for i, s := range policyNames {
		if s == name {
			return Policy(i), nil
		}
	}
	return PolicyFail, fmt.Errorf("unknown unsupported-input policy %q (expected fail, skip or panic)", name)
}
