// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package batch evaluates many account fields concurrently. Each evaluation
// derives its own bit pool, so workers share nothing but the read-only
// accounts.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/KenKundert/avendesora-sub000/internal/account"
	"github.com/KenKundert/avendesora-sub000/internal/engine"
	"github.com/KenKundert/avendesora-sub000/internal/logging"
	"github.com/KenKundert/avendesora-sub000/internal/secrets"
)

// Job names one field of one account.
type Job struct {
	Account *account.Account
	Field   string
}

// Result is the outcome of a Job. Err holds per-field failures such as
// exhaustion; they do not stop the other jobs.
type Result struct {
	Account string
	Field   string
	Value   string
	Err     error
}

// Fields lists jobs for fields of a, optionally only those derived from the
// master seed.
func Fields(a *account.Account, generatedOnly bool) []Job {
	var jobs []Job
	for _, f := range a.FieldNames() {
		if generatedOnly {
			g, err := a.Field(f)
			if err != nil || !secrets.Generated(g) {
				continue
			}
		}
		jobs = append(jobs, Job{Account: a, Field: f})
	}
	return jobs
}

// All lists jobs for every account in s.
func All(s *account.Store, generatedOnly bool) []Job {
	var jobs []Job
	for _, a := range s.Accounts() {
		jobs = append(jobs, Fields(a, generatedOnly)...)
	}
	return jobs
}

// Run evaluates jobs with at most workers goroutines (GOMAXPROCS when
// workers <= 0). Results keep the order of jobs. The returned error is only
// set when ctx is cancelled before all jobs ran.
func Run(ctx context.Context, e engine.Engine, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		i, job := i, job // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := job.Account.Value(e, job.Field)
			if err != nil {
				logging.Debugf("field %s.%s failed: %v", job.Account.Name, job.Field, err)
			}
			results[i] = Result{Account: job.Account.Name, Field: job.Field, Value: v, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
