// Package pricing quotes delivery prices from a rate card.
//
// Compute is a pure function: base rate plus distance charge plus optional rush and heavy
// surcharges, multiplied by a zone factor. Rule wraps a named, validated rate card that can
// be flagged active for default quoting.
package pricing
