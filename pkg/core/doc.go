// Package core wires propconv together at process start: it loads
// configuration, imports the external handler sources and builds the
// handler registry the rest of the program uses.
package core
