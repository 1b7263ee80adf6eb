// Command notifier runs the field-level change notifier: it replays the demo
// catalog, inspects and validates notification policies, and serves the
// read-only introspection API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "notifier:", err)
		os.Exit(1)
	}
}
