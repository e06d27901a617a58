// Package scicalc implements the engine of a keypad scientific calculator.
//
// Expressions use the usual calculator syntax: "2+3×4", "sin(30)^2",
// "-2^2" (which is "-(2^2)"), "2^3^2" (which is "2^(3^2)"). Every function
// takes one parenthesized argument, and multiplication is always explicit,
// so "2(3)" and "2pi" are syntax errors rather than products. Trig functions
// follow an angle mode, Degrees or Radians, given explicitly at evaluation.
//
// A Calculator turns key presses into expressions. It is a value type:
// pressing a key returns the next state, and the caller reads the display
// from it.
package scicalc
