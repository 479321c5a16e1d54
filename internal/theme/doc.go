// Package theme defines the design tokens of the Raio Energia front-end.
// It holds the palette and typography declaration, validates it before any
// renderer sees it, turns it into CSS custom properties and resolves named
// themes from the user's themes directory or the bundled set.
package theme
