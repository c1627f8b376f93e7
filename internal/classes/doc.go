// Package classes applies tailwind-style utility class strings to a
// layout.Style, e.g. "flex-col flex-wrap w-1/2 p-2 mx-auto".
//
// Numeric values are constants in density-independent units, fractions
// and "full" are percentages, and "auto" requests automatic sizing.
// Horizontal sides follow the writing direction: "l" is leading and "r"
// is trailing.
package classes
