package guest

import (
	"errors"
	"fmt"

	"github.com/tarmac-project/nullpay"
	"github.com/tarmac-project/nullpay/payment"
	wapc "github.com/wapc/wapc-guest-tinygo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	// ErrDecodeArguments is returned when a call's payload is not a protobuf Struct.
	ErrDecodeArguments = errors.New("failed to decode arguments")

	// ErrEncodeArguments wraps failures while encoding a call's arguments.
	ErrEncodeArguments = errors.New("failed to encode arguments")

	// ErrEncodeResult wraps failures while encoding a call's result.
	ErrEncodeResult = errors.New("failed to encode result")

	// ErrUnknownFunction is returned by Invoke for names that were never registered.
	ErrUnknownFunction = errors.New("unknown function")
)

// Function is the waPC guest function signature.
type Function = func([]byte) ([]byte, error)

// Config provides configuration options for guest registration.
type Config struct {
	// Plugin answers every registered function.
	Plugin *payment.Plugin

	// Register overrides wapc.RegisterFunction.
	Register func(name string, fn Function)
}

// Guest exposes a Plugin to the host runtime, one waPC function per operation kind.
type Guest struct {
	plugin    *payment.Plugin
	functions map[string]Function
}

// New registers one waPC function per operation kind, named after the kind.
func New(config Config) (*Guest, error) {
	if config.Plugin == nil {
		return nil, nullpay.ErrPluginNil
	}

	register := config.Register
	if register == nil {
		register = func(name string, fn Function) { wapc.RegisterFunction(name, fn) }
	}

	g := &Guest{plugin: config.Plugin, functions: make(map[string]Function)}
	for _, kind := range nullpay.Kinds() {
		fn := g.function(invocations[kind])
		g.functions[string(kind)] = fn
		register(string(kind), fn)
	}

	return g, nil
}

// Invoke runs a registered function the way the host would.
func (g *Guest) Invoke(name string, payload []byte) ([]byte, error) {
	fn, ok := g.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	return fn(payload)
}

// function adapts an operation to waPC. waPC calls are synchronous, so the
// function blocks until the operation's callback fires.
func (g *Guest) function(call invocation) Function {
	return func(payload []byte) ([]byte, error) {
		var s structpb.Struct
		if err := proto.Unmarshal(payload, &s); err != nil {
			return nil, errors.Join(ErrDecodeArguments, err)
		}

		// Every path, including a refused delegation, reports through the
		// callback, so the returned code is not needed here.
		done := make(chan Result, 1)
		call(g.plugin, args(s.GetFields()), func(_ nullpay.CommandHandle, code nullpay.Code, response string) {
			done <- Result{Code: code, Response: response}
		})

		return (<-done).Marshal()
	}
}

// Result is what every registered function returns to the host.
type Result struct {
	Code     nullpay.Code
	Response string
}

// Marshal encodes r as a protobuf Struct {code, response}.
func (r Result) Marshal() ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"code":     int32(r.Code),
		"response": r.Response,
	})
	if err != nil {
		return nil, errors.Join(ErrEncodeResult, err)
	}
	b, err := proto.Marshal(s)
	if err != nil {
		return nil, errors.Join(ErrEncodeResult, err)
	}
	return b, nil
}

// UnmarshalResult decodes the bytes a registered function returned.
func UnmarshalResult(b []byte) (Result, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return Result{}, errors.Join(nullpay.ErrHostResponseInvalid, err)
	}
	a := args(s.GetFields())
	return Result{Code: nullpay.Code(a.number("code")), Response: a.str("response")}, nil
}

// MarshalArgs encodes a call's arguments. Field names are the snake_case
// argument names, e.g. "command_handle", "wallet_handle", "req_json".
func MarshalArgs(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Join(ErrEncodeArguments, err)
	}
	b, err := proto.Marshal(s)
	if err != nil {
		return nil, errors.Join(ErrEncodeArguments, err)
	}
	return b, nil
}
