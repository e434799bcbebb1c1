// Package diagnostic provides structured errors, warnings and
// "why this field moved" explanations for corresponding-generator.
//
// Synthesis itself never fails on a non-matching field; diagnostics are
// produced by configuration validation and by the explain report.
package diagnostic
