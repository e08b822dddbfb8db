// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/totp-seed-vault/internal/adapter"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
)

// timestampLayout is the wall-clock format used in every emitted line.
const timestampLayout = "2006-01-02 15:04:05"

type codeLogJob struct {
	client adapter.VaultClient
	sink   io.Writer

	now func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewCodeLogJob creates a codeLogJob that fetches the current code from the
// vault and appends one "<UTC timestamp> - 2FA Code: <code>" line per tick to
// sink. The job is idle until Start is called.
func NewCodeLogJob(client adapter.VaultClient, sink io.Writer, logger *logger.Logger) CodeLogJob {
	return &codeLogJob{
		client: client,
		sink:   sink,
		now:    time.Now,
		logger: logger,
	}
}

// Run implements [Worker]: a single fetch-and-log pass with a background
// context. Used by one-shot invocations.
func (j *codeLogJob) Run() {
	if err := j.LogOnce(context.Background()); err != nil {
		j.logger.Error().Err(err).Msg("code log pass failed")
	}
}

// Start implements [CodeLogJob]. It stops any previously running job, then
// launches a background goroutine that logs the code immediately and on every
// tick afterwards. If interval is zero or negative it defaults to one minute.
func (j *codeLogJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		if err := j.LogOnce(jobCtx); err != nil {
			j.logger.Error().Err(err).Msg("code log pass failed")
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.LogOnce(jobCtx); err != nil {
					j.logger.Error().Err(err).Msg("code log pass failed")
				}
			}
		}
	}()
}

// Stop implements [CodeLogJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *codeLogJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// LogOnce implements [CodeLogJob]. Nothing is written when the fetch fails,
// so the sink only ever contains well-formed lines.
func (j *codeLogJob) LogOnce(ctx context.Context) error {
	code, err := j.client.FetchCode(ctx)
	if err != nil {
		return fmt.Errorf("fetch current code: %w", err)
	}

	stamp := j.now().UTC().Format(timestampLayout)
	if _, err = fmt.Fprintf(j.sink, "%s - 2FA Code: %s\n", stamp, code.Code); err != nil {
		return fmt.Errorf("write code log line: %w", err)
	}

	return nil
}
