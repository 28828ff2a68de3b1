// Package content defines the documentation data model for headless UI
// builders: prop tables, element lists, reactive state, data attributes and
// keyboard interactions. Values are assembled once by the builders package
// and handed to renderers; nothing in this package mutates shared state.
package content
