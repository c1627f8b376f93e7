// Package debug holds the opt-in logger shared by every Scope.
//
// Set FLEXBOX_DEBUG to a file path to append timestamped debug lines (pass
// timings, style values the solver cannot represent) to that file. Without
// it the logger discards everything.
package debug
