// Package builders assembles the documentation data for each headless UI
// builder. Every exported *Data function rebuilds its value from the shared
// vocabulary in attrs, kbd and props, so callers always receive an
// independent copy.
package builders
