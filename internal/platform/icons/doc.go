// Package icons defines the icon identifiers used by the web templates.
//
// The catalog maps stable icon identifiers to human-readable labels and to
// Lucide glyphs, so templates name intent and the sprite decides the drawing.
package icons
