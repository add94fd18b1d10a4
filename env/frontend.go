//go:build wasm
// +build wasm

package env

import (
	"syscall/js"
	"time"

	"github.com/tinywasm/fetch"
	"github.com/tinywasm/fmt"
)

// SetupDefaultLogger configures the default logger for frontend environments
func SetupDefaultLogger() Logger {
	return func(a ...any) {
		console := js.Global().Get("console")
		if console.IsUndefined() {
			return
		}
		args := make([]any, len(a))
		for i, arg := range a {
			args[i] = js.ValueOf(fmt.Sprintf("%v", arg))
		}
		console.Call("log", args...)
	}
}

// SetupDefaultFileReader fetches resources (fonts) over HTTP. The request
// completes on the JS event loop, so the returned func must not be called
// from a js.FuncOf callback: run it from main or another goroutine.
func SetupDefaultFileReader() ReadFileFunc {
	return func(path string) ([]byte, error) {
		type result struct {
			data []byte
			err  error
		}
		done := make(chan result, 1)

		fetch.Get(path).Send(func(resp *fetch.Response, err error) {
			if err != nil {
				done <- result{err: fmt.Errf("error fetching file %s: %v", path, err)}
				return
			}
			if resp.Status != 200 {
				done <- result{err: fmt.Errf("error fetching file %s: status %d", path, resp.Status)}
				return
			}
			done <- result{data: resp.Body()}
		})

		r := <-done
		return r.data, r.err
	}
}

// AnimationFrames schedules callbacks with requestAnimationFrame.
type AnimationFrames struct{}

// Schedule runs fn on the next browser frame. The returned func cancels it.
func (AnimationFrames) Schedule(fn func(now time.Time)) (cancel func()) {
	var cb js.Func
	done := false
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		done = true
		cb.Release()
		fn(time.Now())
		return nil
	})
	id := js.Global().Call("requestAnimationFrame", cb)
	return func() {
		if done {
			return
		}
		done = true
		js.Global().Call("cancelAnimationFrame", id)
		cb.Release()
	}
}
