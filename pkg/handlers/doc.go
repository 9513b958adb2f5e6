// Package handlers implements the standard property handlers that map the
// bundler rule vocabulary (test, use, issuer, descriptionData, ...) onto
// conditions and effects during rule compilation. The engine itself is
// property-agnostic; this package is where the domain vocabulary lives.
package handlers
