// Package scheduler runs outbound registry transfers on a worker pool and
// hands each outcome to its continuation exactly once.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/escrow/base/ctx"
	"github.com/x-xyz/escrow/base/goroutine"
	"github.com/x-xyz/escrow/base/log"
	"github.com/x-xyz/escrow/base/metrics"
	"github.com/x-xyz/escrow/domain/keys"
	"github.com/x-xyz/escrow/domain/purchase"
	"github.com/x-xyz/escrow/service/redis"
)

var (
	ErrRegistryPanic = errors.New("scheduler: registry call panicked")
)

const (
	defaultWorkers         = 32
	defaultQueueLength     = 1024
	defaultScheduleTimeout = 3 * time.Second
	defaultCallTimeout     = 30 * time.Second
	defaultGuardTTL        = 24 * time.Hour
)

type Scheduler interface {
	purchase.Scheduler
	// Release stops the pool after queued transfers have been handed off.
	Release()
}

type Config struct {
	Registry purchase.Registry
	Redis    redis.Service

	Workers         int
	QueueLength     int
	ScheduleTimeout time.Duration
	// CallTimeout bounds one registry call. A call that fails at the deadline
	// is delivered as TimedOut; an answer is delivered even if it arrives late.
	CallTimeout time.Duration
	GuardTTL    time.Duration
}

type impl struct {
	registry        purchase.Registry
	redis           redis.Service
	pool            *goroutines.Pool
	scheduleTimeout time.Duration
	callTimeout     time.Duration
	guardTTL        time.Duration
	met             metrics.Service
}

func New(cfg *Config) Scheduler {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	queueLength := cfg.QueueLength
	if queueLength <= 0 {
		queueLength = defaultQueueLength
	}

	im := &impl{
		registry:        cfg.Registry,
		redis:           cfg.Redis,
		pool:            goroutines.NewPool(workers, goroutines.WithTaskQueueLength(queueLength)),
		scheduleTimeout: cfg.ScheduleTimeout,
		callTimeout:     cfg.CallTimeout,
		guardTTL:        cfg.GuardTTL,
		met:             metrics.New("scheduler"),
	}
	if im.scheduleTimeout <= 0 {
		im.scheduleTimeout = defaultScheduleTimeout
	}
	if im.callTimeout <= 0 {
		im.callTimeout = defaultCallTimeout
	}
	if im.guardTTL <= 0 {
		im.guardTTL = defaultGuardTTL
	}
	return im
}

func (im *impl) Dispatch(ctx bCtx.Ctx, req purchase.TransferRequest, cont purchase.Continuation) error {
	// the continuation outlives the request that triggered it
	detached := bCtx.WithValue(bCtx.Detach(ctx), "purchaseId", req.PurchaseId)
	fire := im.once(detached, req.PurchaseId.String(), cont)

	err := im.pool.ScheduleWithTimeout(im.scheduleTimeout, func() {
		fire(im.call(detached, req))
	})
	if err != nil {
		im.met.BumpSum("dispatch.err", 1)
		ctx.WithFields(log.Fields{
			"err":        err,
			"purchaseId": req.PurchaseId,
		}).Error("failed to ScheduleWithTimeout")
		return err
	}
	return nil
}

func (im *impl) Release() {
	im.pool.Release()
}

func (im *impl) call(ctx bCtx.Ctx, req purchase.TransferRequest) purchase.Outcome {
	defer im.met.BumpTime("call.latency").End()

	callCtx, cancel := bCtx.WithTimeout(ctx, im.callTimeout)
	defer cancel()

	var outcome purchase.Outcome
	event := goroutine.Run(func() {
		value, err := im.registry.TransferAndReportPayout(callCtx, req)
		outcome = purchase.Outcome{Value: value, Err: err}
	})
	if event != nil {
		return purchase.Outcome{Err: fmt.Errorf("%v: %w", event.Panic, ErrRegistryPanic)}
	}
	if outcome.Err != nil && (callCtx.Err() != nil || errors.Is(outcome.Err, context.DeadlineExceeded)) {
		im.met.BumpSum("call.timeout", 1)
		ctx.WithFields(log.Fields{
			"err":        outcome.Err,
			"purchaseId": req.PurchaseId,
		}).Warn("registry gave no answer before the deadline")
		outcome.TimedOut = true
	}
	return outcome
}

// once wraps cont so that at most one outcome is delivered per purchase:
// sync.Once covers this process and a redis guard covers duplicate dispatches
// across processes.
func (im *impl) once(ctx bCtx.Ctx, id string, cont purchase.Continuation) func(purchase.Outcome) {
	var o sync.Once
	return func(outcome purchase.Outcome) {
		o.Do(func() {
			if !im.claim(ctx, id) {
				return
			}
			if event := goroutine.Run(func() { cont(ctx, outcome) }); event != nil {
				im.met.BumpSum("continuation.panic", 1)
			}
		})
	}
}

func (im *impl) claim(ctx bCtx.Ctx, id string) bool {
	if im.redis == nil {
		return true
	}
	key := keys.RedisKey(keys.PfxResolveGuard, id)
	err := im.redis.SetNX(ctx, key, []byte("1"), im.guardTTL)
	if err == nil {
		return true
	}
	if errors.Is(err, redis.ErrKeyExists) {
		im.met.BumpSum("continuation.duplicate", 1)
		ctx.WithField("key", key).Warn("continuation already claimed")
		return false
	}
	// the purchase state transition still rejects a second resolver
	ctx.WithFields(log.Fields{
		"err": err,
		"key": key,
	}).Warn("redis.SetNX failed, continuing without guard")
	return true
}
