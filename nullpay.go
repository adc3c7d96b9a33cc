package nullpay

import "fmt"

// DefaultNamespace is used when no explicit namespace is provided.
const DefaultNamespace = "nullpay"

// RuntimeConfig carries configuration that is used during creation of plugin components.
type RuntimeConfig struct {
	// Namespace is the waPC namespace used to scope host interactions.
	Namespace string
}

// WithDefaults returns a copy of the configuration with empty fields filled in.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	return c
}

// Code is a result code from the host library's error enumeration. The
// plugin passes codes through without interpreting them.
type Code int32

const (
	// Success reports a completed operation.
	Success Code = 0

	// CommonInvalidState is reported when the host could not be reached or
	// answered with something the plugin could not decode.
	CommonInvalidState Code = 112
)

// String implements fmt.Stringer.
func (c Code) String() string {
	switch c {
	case Success:
		return "Success"
	case CommonInvalidState:
		return "CommonInvalidState"
	default:
		return fmt.Sprintf("Code(%d)", int32(c))
	}
}

// CommandHandle correlates an asynchronous result with the call that started it.
type CommandHandle int32

// WalletHandle identifies an open wallet in the host library. It is opaque here.
type WalletHandle int32

// Callback receives the outcome of an operation. It is invoked exactly once
// per operation call.
type Callback func(handle CommandHandle, code Code, payload string)

// Kind names one payment operation. Every kind owns its own injection queue.
type Kind string

const (
	CreatePaymentAddress           Kind = "create_payment_address"
	AddRequestFees                 Kind = "add_request_fees"
	ParseResponseWithFees          Kind = "parse_response_with_fees"
	BuildGetPaymentSourcesRequest  Kind = "build_get_payment_sources_request"
	ParseGetPaymentSourcesResponse Kind = "parse_get_payment_sources_response"
	BuildPaymentRequest            Kind = "build_payment_request"
	ParsePaymentResponse           Kind = "parse_payment_response"
	BuildMintRequest               Kind = "build_mint_request"
	BuildSetTxnFeesRequest         Kind = "build_set_txn_fees_request"
	BuildGetTxnFeesRequest         Kind = "build_get_txn_fees_request"
	ParseGetTxnFeesResponse        Kind = "parse_get_txn_fees_response"
	BuildVerifyPaymentRequest      Kind = "build_verify_payment_request"
	ParseVerifyPaymentResponse     Kind = "parse_verify_payment_response"
)

// Kinds lists every operation kind in registration order.
func Kinds() []Kind {
	return []Kind{
		CreatePaymentAddress,
		AddRequestFees,
		ParseResponseWithFees,
		BuildGetPaymentSourcesRequest,
		ParseGetPaymentSourcesResponse,
		BuildPaymentRequest,
		ParsePaymentResponse,
		BuildMintRequest,
		BuildSetTxnFeesRequest,
		BuildGetTxnFeesRequest,
		ParseGetTxnFeesResponse,
		BuildVerifyPaymentRequest,
		ParseVerifyPaymentResponse,
	}
}
