package nullpay

import "errors"

var (
	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host returned an invalid or unexpected payload.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrCallbackNil is the panic value used when an operation is invoked
	// without a completion callback.
	ErrCallbackNil = errors.New("completion callback cannot be nil")

	// ErrPluginNil is returned when a component is built without a plugin.
	ErrPluginNil = errors.New("payment plugin cannot be nil")
)
