// Package render defines the presentation contract driven by the form
// controller. Decision logic never touches a display directly: it calls a
// Presenter, and concrete presenters (terminal, HTML, test recorders) decide
// what a status flag, a strength reading, or a banner looks like.
package render
