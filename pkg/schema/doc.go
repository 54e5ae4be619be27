// Package schema defines the static field schema a form renders: an ordered
// list of field descriptors (name, label, display type, NoEcho flag for
// sensitive fields). Schemas are configuration: they can be declared in code,
// loaded from YAML/JSON documents, or derived from an OpenAPI operation's
// request body.
package schema
