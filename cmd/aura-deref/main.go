/*
aura-deref reads the JSON AST an external parser process produces for a
source file, runs it through the convergent tree-rewriting engine, and
prints (or inspects) the result.
*/
package main

import (
	"github.com/killvxk/aura/cmd/aura-deref/cmd"
)

func main() {
	cmd.Execute()
}
