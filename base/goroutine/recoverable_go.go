package goroutine

import (
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/base/utils"
)

var (
	logger = log.Log()
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

// Run calls f on the current goroutine and recovers a panic raised by it.
// The returned event is nil if f returned normally.
func Run(f func()) (event *PanicEvent) {
	defer func() {
		if p := recover(); p != nil {
			stack := utils.Stack(3)

			logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")

			event = &PanicEvent{p, stack}
		}
	}()

	f()
	return nil
}
