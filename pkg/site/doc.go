// Package site turns catalogued builder documentation into rendered pages.
//
// A Generator resolves a builder from the catalog, picks a renderer from the
// render registry and renders the builder with the requested options. WriteAll
// renders every catalogued builder into a directory, one file per builder.
package site
