// Package session runs one timed block/unblock cycle over the hosts
// file: apply the block, wait out the duration or an interrupt, then
// restore, whichever way the wait ends.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pravsels/deepwork/internal/logger"
)

var ErrPermissionDenied = errors.New("administrative privileges required")

type State int

const (
	StateIdle State = iota
	StateBlocking
	StateRestored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBlocking:
		return "blocking"
	case StateRestored:
		return "restored"
	}
	return "unknown"
}

// Editor is the hosts-file mutation boundary.
type Editor interface {
	Apply(ctx context.Context, domains []string) error
	Remove(ctx context.Context, domains []string) error
}

type Session struct {
	domains  []string
	duration time.Duration
	editor   Editor
	elevated func() bool
	log      logger.Logger
	state    State
}

func New(domains []string, d time.Duration, editor Editor, elevated func() bool, log logger.Logger) *Session {
	return &Session{
		domains:  domains,
		duration: d,
		editor:   editor,
		elevated: elevated,
		log:      log,
		state:    StateIdle,
	}
}

func (s *Session) State() State { return s.state }

// Run drives the session to completion. Once the block is applied,
// restoration happens on every way out: timer expiry, context
// cancellation, or a failure mid-wait. An apply failure aborts with
// nothing to roll back.
func (s *Session) Run(ctx context.Context) (err error) {
	if !s.elevated() {
		return ErrPermissionDenied
	}

	end := time.Now().Add(s.duration)
	if err := s.editor.Apply(ctx, s.domains); err != nil {
		return fmt.Errorf("applying block: %w", err)
	}
	s.state = StateBlocking
	s.log.Infof("blocking %d domains until %s", len(s.domains), end.Format("15:04:05"))

	defer func() {
		if rerr := s.restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	timer := time.NewTimer(s.duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		s.log.Info("block duration elapsed")
	case <-ctx.Done():
		s.log.Info("block interrupted, restoring early")
	}
	return nil
}

// restore runs exactly once per session. It deliberately ignores the
// run context: an interrupt that ended the wait must not also cancel
// the cleanup edit.
func (s *Session) restore() error {
	if s.state == StateRestored {
		return nil
	}
	err := s.editor.Remove(context.Background(), s.domains)
	s.state = StateRestored
	if err != nil {
		s.log.Errorf("unblock failed, blocks may still be active: %v", err)
		return fmt.Errorf("removing block: %w", err)
	}
	s.log.Info("domains unblocked")
	return nil
}
