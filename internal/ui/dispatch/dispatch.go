// Package dispatch runs background work and UI updates with panic recovery.
package dispatch

import (
	"fmt"
	"runtime/debug"

	"fyne.io/fyne/v2"

	"toolbox/internal/logger"
)

// uiDo hands fn to the UI goroutine. Tests replace it.
var uiDo = fyne.Do

// WithPanicGuard runs fn and recovers a panic, logging it with scope and
// passing the recovered value to onPanic when set.
func WithPanicGuard(scope string, onPanic func(any), fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic", "scope", scope, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	fn()
}

// SafeGo runs fn on a new goroutine.
func SafeGo(scope string, fn func()) {
	go func() {
		WithPanicGuard(scope, nil, fn)
	}()
}

// SafeDo runs fn on the UI goroutine. It is safe to call from any goroutine.
func SafeDo(scope string, fn func()) {
	WithPanicGuard(scope+".dispatch", nil, func() {
		uiDo(func() {
			WithPanicGuard(scope, nil, fn)
		})
	})
}
