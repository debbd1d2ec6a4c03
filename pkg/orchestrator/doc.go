// Package orchestrator wires the content loader → decoder → transformer →
// theme selection → renderer pipeline behind a single Generate call, with
// dependency injection for every stage.
package orchestrator
