// Package styles holds the closed set of banner styles.
//
// A [Style] is a data entry: a background painter, an optional decoration
// painter and a [TextRule] for the text layer. Styles are looked up by [ID]
// through [Resolve]; there is no ambient "current style".
//
// # Adding a Style
//
// Add an ID constant, write its background and decoration functions in a
// file of their own, and append the entry to the registry list in
// styles.go. No other package changes.
//
// # Drawing Rules
//
// Painters only talk to the [canvas.Drawer] they are given and never read
// pixels back. Backgrounds overwrite every pixel with opaque paint.
// Decorations wrap every state change in [canvas.Scoped], so nothing leaks
// into the text layer even if a decoration panics. Translucent accents are
// built with [canvas.Color.WithAlpha].
package styles
