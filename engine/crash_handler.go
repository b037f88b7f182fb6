package engine

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the panic handler used by Go and Recover.
// The handler is expected to restore the terminal; it keeps this package
// independent of the screen implementation
func SetCrashHandler(fn func(any)) {
	crashHandler.Store(&fn)
}

// HandleCrash runs the installed handler, or prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if h := crashHandler.Load(); h != nil && *h != nil {
		(*h)(r)
		return
	}
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// Recover is deferred at the top of goroutines started outside Go (errgroup workers)
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}
