// Package connectors provides implementations of the Connector interface
// for document discovery. A connector scans a root for candidate files
// and can watch it for changes; the filesystem connector is the only
// built-in implementation.
package connectors
