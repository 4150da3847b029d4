// Package main starts the site group manager. The start command serves a
// web page listing the groups of a learning management site with their
// members and joinable sets, and removes selected groups unless their
// realm lock forbids it. The config command prints the effective
// configuration and term-event posts academic session events.
package main
