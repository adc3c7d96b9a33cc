package ledger

import (
	"errors"

	"github.com/tarmac-project/nullpay"
	"github.com/tarmac-project/nullpay/logging"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName       = "ledger"
	fnBuildGetTxnRequest = "build_get_txn_request"
)

// HostCall defines the waPC host function signature used by the builder.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Builder builds GET_TXN ledger requests. The result arrives through cb,
// possibly after BuildGetTxnRequest has returned; the returned Code only
// says whether the build was dispatched.
type Builder interface {
	BuildGetTxnRequest(handle nullpay.CommandHandle, submitterDID string, seqNo int32, cb nullpay.Callback) nullpay.Code
}

// Config controls how a HostBuilder interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig nullpay.RuntimeConfig

	// HostCall overrides the waPC host function used to reach the ledger builder.
	HostCall HostCall

	// Logger receives transport failures. Nil discards them.
	Logger logging.Client
}

// HostBuilder asks the host library to build the request. Each build runs
// on its own goroutine.
type HostBuilder struct {
	runtime  nullpay.RuntimeConfig
	hostCall HostCall
	log      logging.Client
}

var _ Builder = (*HostBuilder)(nil)

// New creates a HostBuilder with namespace defaults and optional host-call override.
func New(config Config) (*HostBuilder, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	log := config.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &HostBuilder{
		runtime:  config.SDKConfig.WithDefaults(),
		hostCall: hostCall,
		log:      log,
	}, nil
}

// BuildGetTxnRequest encodes the request and dispatches the host call. It
// returns Success once the call is under way, or CommonInvalidState if the
// request could not be encoded, in which case cb is never called.
func (b *HostBuilder) BuildGetTxnRequest(handle nullpay.CommandHandle, submitterDID string, seqNo int32, cb nullpay.Callback) nullpay.Code {
	if cb == nil {
		panic(nullpay.ErrCallbackNil)
	}

	payload, err := Request{SubmitterDID: submitterDID, SeqNo: seqNo}.Marshal()
	if err != nil {
		b.log.Error("ledger: command %d: %v", handle, err)
		return nullpay.CommonInvalidState
	}

	go b.call(handle, payload, cb)
	return nullpay.Success
}

func (b *HostBuilder) call(handle nullpay.CommandHandle, payload []byte, cb nullpay.Callback) {
	resp, err := b.hostCall(b.runtime.Namespace, capabilityName, fnBuildGetTxnRequest, payload)
	if err != nil && len(resp) == 0 {
		b.log.Error("ledger: command %d: %v", handle, errors.Join(nullpay.ErrHostCall, err))
		cb(handle, nullpay.CommonInvalidState, "")
		return
	}

	reply, decodeErr := UnmarshalReply(resp)
	if decodeErr != nil {
		if err != nil {
			decodeErr = errors.Join(nullpay.ErrHostCall, err, decodeErr)
		}
		b.log.Error("ledger: command %d: %v", handle, decodeErr)
		cb(handle, nullpay.CommonInvalidState, "")
		return
	}

	// The host may report failure both as an error and a coded reply; the
	// coded reply wins.
	cb(handle, reply.Code, reply.Request)
}
