// Package ruleschema compiles YAML schema documents into validator rule trees.
//
// A schema node names a type (string, number, integer, boolean, uuid, time,
// any, object, array or hash) and the checks applied to it. Object properties
// are validated in the order they appear in the document. Custom messages are
// set per check under messages, keyed by the check name:
//
//	type: object
//	properties:
//	  age:
//	    type: integer
//	    min: 18
//	    messages:
//	      type: age must be a whole number
//	      min: you must be an adult
package ruleschema
