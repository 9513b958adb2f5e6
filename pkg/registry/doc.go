// Package registry provides a generic, type-safe registry for managing
// named rule property handler factories. It supports automatic
// registration through init() functions.
package registry
