// Package camptrees solves "camps and trees" grid puzzles: place camps so
// that every row and column holds its quota, no two camps touch (even
// diagonally), every camp sits beside a tree, and trees pair off with camps
// one to one.
//
// The solver is a fixed-point iteration over four deduction rules
// (FillZeros, FillCamps, ProcessIntersections and AssociateTrees) seeded by
// a one-shot InitializeGrass pass. Each rule mutates the Board in place and
// reports whether it changed anything; Solve restarts the priority scan on
// any change and stops when a full pass changes nothing.
package camptrees
