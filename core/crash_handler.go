package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashRestore func()
)

// SetCrashRestore registers the hook that returns the terminal to a sane state before a crash report
func SetCrashRestore(fn func()) {
	crashMu.Lock()
	crashRestore = fn
	crashMu.Unlock()
}

// HandleCrash restores the terminal, reports r with a stack trace and exits with status 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore := crashRestore
	crashMu.Unlock()
	if restore != nil {
		restore()
	}

	fmt.Fprintf(os.Stderr, "\r\ndiamond-run: panic: %v\r\n%s\r\n", r, debug.Stack())
	_ = os.Stderr.Sync()

	os.Exit(1)
}

// Go starts fn on its own goroutine; a panic there still restores the terminal
func Go(fn func()) {
	go func() {
		defer func() { HandleCrash(recover()) }()
		fn()
	}()
}
