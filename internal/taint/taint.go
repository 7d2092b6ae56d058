// Package taint is a minimal downstream consumer of the rewritten tree,
// present to exercise the exported Tree interface rather than to perform
// full taint analysis, which stays out of scope here. It records which
// Call nodes, after rewriting has materialized their full name, target a
// configured sink (eval, exec, system process spawning, deserialization).
package taint

import "github.com/killvxk/aura/internal/astnode"

// DefaultSinks mirrors the dangerous-call vocabulary aura's semantic rules
// flag (command execution, dynamic evaluation, deserialization).
var DefaultSinks = []string{"eval", "exec", "system", "popen", "unserialize"}

// Finding records one Call node whose resolved full name matched a sink.
type Finding struct {
	Node     *astnode.Call
	FullName string
}

// Scan walks tree and returns every Call whose FullName exactly matches one
// of sinks.
func Scan(tree astnode.Vertex, sinks []string) []Finding {
	wanted := map[string]bool{}
	for _, s := range sinks {
		wanted[s] = true
	}
	var findings []Finding
	walk(tree, func(v astnode.Vertex) {
		call, ok := v.(*astnode.Call)
		if !ok || call.FullName == "" {
			return
		}
		if wanted[call.FullName] {
			findings = append(findings, Finding{Node: call, FullName: call.FullName})
		}
	})
	return findings
}

// PatternMatch records one Call node whose resolved full name matched a
// configured idiom pattern (exact string, used by the optional "pattern"
// stage).
type PatternMatch struct {
	Node    *astnode.Call
	Pattern string
}

// MatchPatterns walks tree and returns every Call whose FullName exactly
// matches one of patterns. It is a lightweight stand-in for idiom matching,
// not a general pattern language.
func MatchPatterns(tree astnode.Vertex, patterns []string) []PatternMatch {
	wanted := map[string]bool{}
	for _, p := range patterns {
		wanted[p] = true
	}
	var matches []PatternMatch
	walk(tree, func(v astnode.Vertex) {
		call, ok := v.(*astnode.Call)
		if !ok || call.FullName == "" {
			return
		}
		if wanted[call.FullName] {
			matches = append(matches, PatternMatch{Node: call, Pattern: call.FullName})
		}
	})
	return matches
}

func walk(v astnode.Vertex, visit func(astnode.Vertex)) {
	if v == nil {
		return
	}
	visit(v)
	for _, slot := range astnode.ChildSlots(v) {
		walk(slot.Get(), visit)
	}
}
