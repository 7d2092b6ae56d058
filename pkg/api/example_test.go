package api_test

import (
	"fmt"
	"log"

	"github.com/killvxk/aura/internal/config"
	"github.com/killvxk/aura/pkg/api"
)

// Example shows basic usage of the rewriting engine library.
func Example() {
	config.Testing = true
	defer func() { config.Testing = false }()

	engine, err := api.NewEngine(api.Options{Silent: true})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	raw := []byte(`{
		"_type": "Module",
		"body": [
			{"_type": "BinOp", "lineno": 1, "op": "add", "left": "ab", "right": "cd"}
		]
	}`)

	out, err := engine.RewriteJSON(raw)
	if err != nil {
		log.Fatalf("Failed to rewrite tree: %v", err)
	}

	fmt.Println(string(out))
	// Output: {"_type":"Module","body":["cdab"],"lineno":0}
}
