// Package template renders the HTML documents the module emits (the fallback
// submission page) through go-template's pongo2 renderer. Autoescaping stays
// on: values from the form are always escaped.
package template
