// Package normalize turns raw extracted records into the uniform output
// schema.
//
// Normalization is a pure transformation over the four text fields of a
// candidate record. It applies an ordered sequence of heuristic rules:
// whitespace cleanup, lifting disposition statements out of the retention
// text, excising misplaced confidentiality and disposition keywords, legal
// citation extraction, retention-year derivation, and the confidentiality
// flag. Re-applying it to its own output changes nothing, since each rule
// removes the substrings that trigger it.
package normalize
