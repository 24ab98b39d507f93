package event

import (
	"context"

	"golang.org/x/net/trace"
)

// StartSpan begins a golang.org/x/net/trace event trace for a single
// file's fact-emission pipeline (parse, resolve, emit, render), so that
// -trace-addr's /debug/requests page can show per-file latency when the
// driver is processing a large batch. It returns a function that must be
// called to finish the span.
//
// No setup call is needed first: trace.New can be called whether or not
// a -trace-addr listener is serving the /debug/requests page.
func StartSpan(ctx context.Context, family, title string) (context.Context, func(err error)) {
	tr := trace.New(family, title)
	return ctx, func(err error) {
		if err != nil {
			tr.LazyPrintf("error: %v", err)
			tr.SetError()
		}
		tr.Finish()
	}
}
