// Package hcl loads run parameters from an HCL file. It is the file-based
// alternative to passing the threshold and the limit on the command line:
//
//	threshold = 2.0
//	limit     = "10.0"
//
// Attribute values may be numbers or strings. Either way they are handed on
// as decimal text and validated exactly like command-line arguments.
package hcl
