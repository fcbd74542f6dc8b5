package main

import (
	"os/signal"
	"syscall"
)

func main() {
	// The Go runtime converts EPIPE on stdout into a fatal SIGPIPE by
	// default. Ignore the signal so writes into a closed pipe surface as
	// errors and the filters can exit quietly.
	signal.Ignore(syscall.SIGPIPE)

	Execute()
}
