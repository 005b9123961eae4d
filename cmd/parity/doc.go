// Package main provides a demo program printing whether numbers given on the
// command line are even or odd. Use -bits 8 to check values as 8-bit
// unsigned integers instead of 16-bit ones.
package main
