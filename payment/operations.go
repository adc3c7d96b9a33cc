package payment

import (
	"fmt"

	"github.com/tarmac-project/nullpay"
)

// CreatePaymentAddress reports a new address made of AddressPrefix and
// RandomLength random characters.
func (p *Plugin) CreatePaymentAddress(handle nullpay.CommandHandle, wallet nullpay.WalletHandle, config string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.CreatePaymentAddress, handle, cb, canned(func() string {
		return AddressPrefix + p.random(RandomLength)
	}))
}

// AddRequestFees reports reqJSON unchanged.
func (p *Plugin) AddRequestFees(handle nullpay.CommandHandle, wallet nullpay.WalletHandle, submitterDID, reqJSON, inputsJSON, outputsJSON, extra string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.AddRequestFees, handle, cb, echo(reqJSON))
}

// ParseResponseWithFees reports respJSON unchanged.
func (p *Plugin) ParseResponseWithFees(handle nullpay.CommandHandle, respJSON string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.ParseResponseWithFees, handle, cb, echo(respJSON))
}

// BuildGetPaymentSourcesRequest delegates to the ledger builder.
func (p *Plugin) BuildGetPaymentSourcesRequest(handle nullpay.CommandHandle, wallet nullpay.WalletHandle, submitterDID, paymentAddress string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.BuildGetPaymentSourcesRequest, handle, cb, p.delegate(nullpay.BuildGetPaymentSourcesRequest))
}

// ParseGetPaymentSourcesResponse reports a single synthetic source worth 1.
func (p *Plugin) ParseGetPaymentSourcesResponse(handle nullpay.CommandHandle, respJSON string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.ParseGetPaymentSourcesResponse, handle, cb, canned(func() string {
		return fmt.Sprintf(paymentSourcesFormat, p.random(RandomLength), p.random(RandomLength))
	}))
}

// BuildPaymentRequest reports outputsJSON unchanged.
func (p *Plugin) BuildPaymentRequest(handle nullpay.CommandHandle, wallet nullpay.WalletHandle, submitterDID, inputsJSON, outputsJSON, extra string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.BuildPaymentRequest, handle, cb, echo(outputsJSON))
}

// ParsePaymentResponse reports respJSON unchanged.
func (p *Plugin) ParsePaymentResponse(handle nullpay.CommandHandle, respJSON string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.ParsePaymentResponse, handle, cb, echo(respJSON))
}

// BuildMintRequest delegates to the ledger builder.
func (p *Plugin) BuildMintRequest(handle nullpay.CommandHandle, wallet nullpay.WalletHandle, submitterDID, outputsJSON, extra string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.BuildMintRequest, handle, cb, p.delegate(nullpay.BuildMintRequest))
}

// BuildSetTxnFeesRequest reports feesJSON unchanged.
func (p *Plugin) BuildSetTxnFeesRequest(handle nullpay.CommandHandle, wallet nullpay.WalletHandle, submitterDID, feesJSON string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.BuildSetTxnFeesRequest, handle, cb, echo(feesJSON))
}

// BuildGetTxnFeesRequest delegates to the ledger builder.
func (p *Plugin) BuildGetTxnFeesRequest(handle nullpay.CommandHandle, wallet nullpay.WalletHandle, submitterDID string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.BuildGetTxnFeesRequest, handle, cb, p.delegate(nullpay.BuildGetTxnFeesRequest))
}

// ParseGetTxnFeesResponse reports TxnFeesResponse.
func (p *Plugin) ParseGetTxnFeesResponse(handle nullpay.CommandHandle, respJSON string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.ParseGetTxnFeesResponse, handle, cb, canned(func() string { return TxnFeesResponse }))
}

// BuildVerifyPaymentRequest reports receipt unchanged.
func (p *Plugin) BuildVerifyPaymentRequest(handle nullpay.CommandHandle, wallet nullpay.WalletHandle, submitterDID, receipt string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.BuildVerifyPaymentRequest, handle, cb, echo(receipt))
}

// ParseVerifyPaymentResponse reports respJSON unchanged.
func (p *Plugin) ParseVerifyPaymentResponse(handle nullpay.CommandHandle, respJSON string, cb nullpay.Callback) nullpay.Code {
	return p.run(nullpay.ParseVerifyPaymentResponse, handle, cb, echo(respJSON))
}
