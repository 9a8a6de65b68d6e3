// Package daylist holds project-wide metadata.
package daylist

// Version is the current daylist release version.
const Version = "0.1.0"
