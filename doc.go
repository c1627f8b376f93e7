// Package flexbox lays out declarative, per-frame UI trees with flexbox.
//
// Callers rebuild a tree of [Item] values every frame and hand it to a
// [Scope]. The scope keeps a persistent solver tree that mirrors the items,
// writes each item's [Style] onto its solver node, and runs a two-phase
// protocol for leaf [Content]: the solver measures leaves under
// [Constraints], and after the solve every leaf is re-measured at its final
// size and placed at its absolute position.
//
//	s, err := flexbox.NewScope(flexbox.WithDensity(2))
//	if err != nil {
//		return err
//	}
//	root := flexbox.New(
//		flexbox.WithDirection(flexbox.Row),
//		flexbox.WithWrap(flexbox.Wrap),
//		flexbox.WithChildren(
//			flexbox.New(flexbox.WithContent(flexbox.NewText("hello"))),
//			flexbox.New(flexbox.WithContent(flexbox.NewText("world"))),
//		),
//	)
//	s.Update(root)
//	size := s.Run(120, 40, 0)
//
// Items marked [Isolated], and items whose content is itself a *Scope, are
// laid out by a nested scope that is measured like any other leaf. Use
// [Node.PositionIn] to translate a node's position into any ancestor's
// frame, across nested scopes.
package flexbox
