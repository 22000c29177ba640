package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers the dependency ID from the package of the type
	// passed to Dep[T], so ports.Logger, ports.Metrics and ports.Tracer all
	// look like a single "ports" dependency.
	t.Skip("graft cannot tell apart nodes that provide interfaces from the shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}
