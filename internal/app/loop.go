package app

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Faultbox/midgard-moon/internal/logger"
)

// FrameFunc renders one frame. dt is the time since the previous frame in seconds.
type FrameFunc func(dt float64) error

// Loop calls a frame function until it is stopped or its context ends.
type Loop struct {
	limiter *rate.Limiter
	now     func() time.Time
	stopped atomic.Bool
	log     *zap.Logger
}

// NewLoop creates a loop. fps > 0 caps the frame rate; otherwise frames are
// paced by the buffer swap alone.
func NewLoop(fps int) *Loop {
	l := &Loop{
		now: time.Now,
		log: logger.Named("loop"),
	}
	if fps > 0 {
		l.limiter = rate.NewLimiter(rate.Limit(fps), 1)
	}
	return l
}

// Stop ends the loop after the current frame. Safe to call from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Run calls frame once per iteration. It returns nil when stopped or when ctx
// is cancelled, and the wrapped error of the first frame that fails.
func (l *Loop) Run(ctx context.Context, frame FrameFunc) error {
	last := l.now()
	frameCount := 0
	fpsTimer := last

	l.log.Info("starting render loop")

	for !l.Stopped() {
		if ctx.Err() != nil {
			break
		}
		if l.limiter != nil {
			// Wait only fails when ctx ends or its deadline falls before the next token
			if err := l.limiter.Wait(ctx); err != nil {
				l.log.Debug("frame limiter wait aborted", zap.Error(err))
				break
			}
		}

		now := l.now()
		dt := now.Sub(last).Seconds()
		last = now

		if err := frame(dt); err != nil {
			return fmt.Errorf("frame error: %w", err)
		}

		frameCount++
		if now.Sub(fpsTimer) >= time.Second {
			l.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = now
		}
	}

	l.log.Info("render loop stopped")
	return nil
}
