package graft

// Version is the library release tag, surfaced by the CLI and the HTTP
// status endpoint.
var Version = "0.2.0"
