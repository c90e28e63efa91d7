package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies would validate the node graph statically, but
// graft.AssertDepsValid infers dependency IDs from the package name of the
// type used in Dep[T]. Every adapter here resolves interfaces out of the
// shared ports package, so the check reports a single "ports" dependency and
// cannot match our node IDs.
func TestGraftDependencies(t *testing.T) {
	t.Skip("graft.AssertDepsValid cannot resolve nodes sharing the ports package")
	graft.AssertDepsValid(t, "../../internal")
}
