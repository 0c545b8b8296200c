// Package gridfile loads grid documents into cells ready for validation.
//
// A grid document lists columns, each with a bindTo field name, a type and
// a declarative list of validators, followed by rows keyed by bindTo:
//
//	columns:
//	  - bindTo: email
//	    title: Email
//	    validators:
//	      - type: required
//	      - type: regex
//	        pattern: '^[^@\s]+@[^@\s]+$'
//	      - type: unique
//	        ignoreViolation: true
//	rows:
//	  - email: a@example.com
//	  - email: b@example.com
//
// The same structure can be written as YAML, TOML or JSON; the format is
// chosen from the file extension. Validator types are resolved through a
// [Registry], so callers can add their own rules next to the built-in
// required, regex and unique presets.
package gridfile
