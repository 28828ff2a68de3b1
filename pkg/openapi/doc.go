// Package openapi describes the builder documentation data model as OpenAPI 3
// component schemas. External renderers can use the exported document to
// validate JSON produced by the json renderer.
package openapi
