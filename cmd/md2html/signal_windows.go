//go:build windows

package main

import "os"

// Console processes only see Ctrl+C; SIGTERM is never delivered.
var shutdownSignals = []os.Signal{os.Interrupt}
