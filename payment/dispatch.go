package payment

import (
	"sync"
	"time"

	"github.com/tarmac-project/nullpay"
)

// logic is the unscripted behaviour of one operation. It completes done
// exactly once, now or later, and returns the status handed to the caller.
type logic func(handle nullpay.CommandHandle, done nullpay.Callback) nullpay.Code

// run is the entry point shared by every operation. A scripted response for
// kind short-circuits fn; otherwise fn runs with a callback that fires at
// most once.
func (p *Plugin) run(kind nullpay.Kind, handle nullpay.CommandHandle, cb nullpay.Callback, fn logic) nullpay.Code {
	if cb == nil {
		panic(nullpay.ErrCallbackNil)
	}
	p.stats.operations.Inc()

	if r, ok := p.registry.Queue(kind).Next(); ok {
		p.stats.injected.Inc()
		p.log.Debug("%s: command %d: scripted response %v", kind, handle, r.Code)
		cb(handle, r.Code, r.Payload)
		return r.Code
	}

	return fn(handle, once(cb))
}

func once(cb nullpay.Callback) nullpay.Callback {
	var o sync.Once
	return func(handle nullpay.CommandHandle, code nullpay.Code, payload string) {
		o.Do(func() { cb(handle, code, payload) })
	}
}

// echo answers with v unchanged.
func echo(v string) logic {
	return func(handle nullpay.CommandHandle, done nullpay.Callback) nullpay.Code {
		done(handle, nullpay.Success, v)
		return nullpay.Success
	}
}

// canned answers with whatever render produces.
func canned(render func() string) logic {
	return func(handle nullpay.CommandHandle, done nullpay.Callback) nullpay.Code {
		done(handle, nullpay.Success, render())
		return nullpay.Success
	}
}

// delegate hands the operation to the ledger builder and returns its
// dispatch status. If the builder refuses the work it will not call back,
// so the refusal code is reported through done as well.
func (p *Plugin) delegate(kind nullpay.Kind) logic {
	return func(handle nullpay.CommandHandle, done nullpay.Callback) nullpay.Code {
		start := time.Now()
		p.stats.inflight.Inc()

		var o sync.Once
		finish := func(h nullpay.CommandHandle, code nullpay.Code, payload string) {
			o.Do(func() {
				p.stats.inflight.Dec()
				p.stats.latency.ObserveSince(start)
				done(h, code, payload)
			})
		}

		code := p.builder.BuildGetTxnRequest(handle, SubmitterDID, SeqNo, finish)
		if code != nullpay.Success {
			p.log.Error("%s: command %d: ledger builder refused request: %v", kind, handle, code)
			finish(handle, code, "")
		}
		return code
	}
}
