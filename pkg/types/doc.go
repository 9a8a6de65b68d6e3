// Package types defines the Task entity, the Store interface, the Config
// struct, and the standard errors shared by the daylist storage and
// controller layers.
package types
