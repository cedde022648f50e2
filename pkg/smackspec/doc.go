// SPDX-License-Identifier: MPL-2.0

// Package smackspec parses smackspec package manifests: the flat,
// line-oriented format describing one package's identity, provided
// version, and dependency constraints.
//
// A manifest is a sequence of directives. A directive starts on a key
// line ("<key>:<value>", no leading whitespace, first colon splits) and
// extends over every immediately following continuation line: a line that
// is empty or whose first character is a space, tab, CR or LF.
// Continuation text is appended to the value verbatim, line terminators
// included. Blank lines at the very start of a document are ignored.
//
// The format is closed. Recognized keys are provides (required, exactly
// once), description (at most once), requires (any number), comment
// (discarded), and a fixed set of opaque single-valued keys such as
// maintainer, license and build. Anything else is an error; a malformed
// or ambiguous manifest always fails loudly rather than producing a
// partial result, because downstream dependency handling must never
// operate on a wrong graph.
//
// Parsing is pure and total: input is read once up front, the pipeline
// (line reading, directive assembly, classification, manifest building)
// never loops over its input more than once, and the first violation
// aborts with a typed error carrying the offending 1-based line.
package smackspec
