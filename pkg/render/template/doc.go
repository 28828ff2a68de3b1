// Package template defines the template seam used by the html renderer. The
// pongo subpackage provides the pongo2-backed engine.
package template
