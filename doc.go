// Package scicalc implements the expression engine behind a desk-style
// scientific calculator.
//
// Input is tokenized with maximal munch before anything is interpreted, so a
// constant like e is only ever the whole identifier "e" and never a letter
// inside another name such as exp. Expressions read like notes: "2π" and
// "2 (3)" are multiplications, "sin x" is sin(x), "√9" is sqrt(9), and
// "-2^2" is "-(2^2)". Both "^" and "**" raise to a power, and "×" and "÷"
// work alongside "*" and "/".
//
// Arithmetic is carried out on math/big floats at a configurable precision
// that defaults to IEEE double precision. Failures are typed; use KindOf to
// collapse them into broad categories for display.
package scicalc
