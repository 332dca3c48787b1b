package position

import (
	"github.com/pkg/errors"
)

// A Policy defines what happens when a reorder leaves the positions non-contiguous.
type Policy string

const (
	// PolicyRepair renumbers all the items from 1 to N.
	PolicyRepair Policy = "repair"
	// PolicyKeep stores the requested positions as is.
	PolicyKeep Policy = "keep"
	// PolicyReject aborts the reorder.
	PolicyReject Policy = "reject"
)

// ParsePolicy returns the policy matching the given name.
// An empty name returns PolicyRepair.
func ParsePolicy(name string) (Policy, error) {
	switch p := Policy(name); p {
	case "":
		return PolicyRepair, nil
	case PolicyRepair, PolicyKeep, PolicyReject:
		return p, nil
	default:
		return "", errors.Errorf("unknown reorder policy %q", name)
	}
}
