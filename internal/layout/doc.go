// Package layout holds the style vocabulary shared by the flexbox bridge.
//
// It defines the tagged [Dimension] (percent, constant, auto or undefined),
// four-sided [Edges], the aggregate [Style] and the geometry types the bridge
// reports after a solve. Types are re-exported through the root flexbox
// package for public consumption.
package layout
