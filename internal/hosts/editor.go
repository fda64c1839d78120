// Package hosts edits the system hosts file. All mutation goes through
// whole-file read and rewrite so the marker line and its entries are
// never left half-written.
package hosts

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pravsels/deepwork/internal/logger"
)

// Op names the hosts-file operation that failed.
type Op string

const (
	OpApply  Op = "apply"
	OpRemove Op = "remove"
)

// OpError is any read or write failure on the hosts file, tagged with
// the operation that was in progress.
type OpError struct {
	Op   Op
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("hosts %s on %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Flusher refreshes the OS resolver cache after an edit.
type Flusher interface {
	FlushDNS(ctx context.Context) error
}

// FlusherFunc adapts a plain function to the Flusher interface.
type FlusherFunc func(ctx context.Context) error

func (f FlusherFunc) FlushDNS(ctx context.Context) error { return f(ctx) }

// Editor manages a single marked block of loopback entries in the
// hosts file.
//
// Removal matches lines by substring containment, not by exact host
// token. Blocking "a.com" would therefore also strip an unrelated
// entry for "banana.com". Kept as-is: cleanup must reliably catch
// stale entries from earlier runs whatever their exact formatting.
type Editor struct {
	path     string
	loopback string
	marker   string
	flusher  Flusher
	log      logger.Logger
}

func NewEditor(path, loopback, marker string, flusher Flusher, log logger.Logger) *Editor {
	return &Editor{
		path:     path,
		loopback: loopback,
		marker:   marker,
		flusher:  flusher,
		log:      log,
	}
}

// Apply writes the marker line plus one loopback mapping per domain
// at the end of the hosts file. Any pre-existing managed block, stale
// or current, is stripped first, so Apply is idempotent.
func (e *Editor) Apply(ctx context.Context, domains []string) error {
	return e.rewrite(ctx, domains, true)
}

// Remove strips the managed block and every line mentioning one of
// the domains, restoring the file to its unblocked state.
func (e *Editor) Remove(ctx context.Context, domains []string) error {
	return e.rewrite(ctx, domains, false)
}

func (e *Editor) rewrite(ctx context.Context, domains []string, add bool) error {
	op := OpRemove
	if add {
		op = OpApply
	}

	data, err := os.ReadFile(e.path)
	if err != nil {
		return &OpError{Op: op, Path: e.path, Err: err}
	}

	var kept []string
	for _, line := range splitLines(data) {
		if strings.Contains(line, e.marker) || containsAny(line, domains) {
			continue
		}
		kept = append(kept, line)
	}

	if add {
		kept = append(kept, e.marker)
		for _, d := range domains {
			kept = append(kept, e.loopback+" "+d)
		}
	}

	out := strings.Join(kept, "\n") + "\n"
	if err := os.WriteFile(e.path, []byte(out), 0644); err != nil {
		return &OpError{Op: op, Path: e.path, Err: err}
	}
	e.log.Debugf("hosts %s: rewrote %s (%d lines)", op, e.path, len(kept))

	// The edit already succeeded; a failed cache flush only delays it
	// taking effect.
	if err := e.flusher.FlushDNS(ctx); err != nil {
		e.log.Warnf("could not flush DNS cache: %v (a browser restart may be needed)", err)
	}
	return nil
}

// Active reports whether the managed block is currently present, and
// the domains it maps.
func (e *Editor) Active() (bool, []string, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return false, nil, fmt.Errorf("reading %s: %w", e.path, err)
	}

	found := false
	var domains []string
	for _, line := range splitLines(data) {
		if strings.Contains(line, e.marker) {
			found = true
			continue
		}
		if !found {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || fields[0] != e.loopback {
			break
		}
		domains = append(domains, fields[1])
	}
	return found, domains, nil
}

func splitLines(data []byte) []string {
	s := strings.TrimRight(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func containsAny(line string, domains []string) bool {
	for _, d := range domains {
		if strings.Contains(line, d) {
			return true
		}
	}
	return false
}
