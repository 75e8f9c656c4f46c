// Package rubiks models a 3x3 Rubik's cube as 54 colored facelets, decides
// whether a user-entered configuration corresponds to a physically
// realizable and solvable cube, and applies moves as pure state transforms.
//
// # Quick Start
//
// Build a state and check it:
//
//	c := rubiks.New()
//	report := rubiks.Diagnose(c)
//	fmt.Println(report.IsValid) // true
//
// Apply moves without mutating the original:
//
//	scrambled := c.ApplySequence([]rubiks.Move{rubiks.R, rubiks.U, rubiks.RPrime, rubiks.UPrime})
//	fmt.Println(c.IsSolved())         // true, c untouched
//	fmt.Println(scrambled.IsSolved()) // false
//
// Parse notation:
//
//	moves, err := rubiks.ParseMoves("R U R' U' r2")
//
// Lowercase letters are wide (two-layer) turns, ' is counter-clockwise,
// 2 is a half turn.
//
// # Validation
//
// ValidateStructure collects color-count, edge, corner and uniqueness
// violations against the fixed geometry of a physical cube. CheckParity
// evaluates the three group-theoretic solvability invariants on
// structurally clean, complete states. Diagnose wraps both into a Report
// with a 0-100 progress score, and AutoFix / AutoFixAll mechanically repair
// the recolorable violations.
//
// Validation never returns an error for bad cube data; it returns violation
// records. Only malformed move notation is treated as a caller error.
//
// All exported operations treat *Cube as an immutable value and the
// package-level geometry tables are read-only after init, so any number of
// goroutines may validate and transform states concurrently.
//
// Solving lives in the solver subpackage.
package rubiks
