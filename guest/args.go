package guest

import (
	"github.com/tarmac-project/nullpay"
	"github.com/tarmac-project/nullpay/payment"
	"google.golang.org/protobuf/types/known/structpb"
)

// args reads call arguments. Missing or mistyped fields read as zero values.
type args map[string]*structpb.Value

func (a args) str(name string) string     { return a[name].GetStringValue() }
func (a args) number(name string) float64 { return a[name].GetNumberValue() }

func (a args) handle() nullpay.CommandHandle { return nullpay.CommandHandle(a.number("command_handle")) }
func (a args) wallet() nullpay.WalletHandle  { return nullpay.WalletHandle(a.number("wallet_handle")) }

type invocation func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code

var invocations = map[nullpay.Kind]invocation{
	nullpay.CreatePaymentAddress: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.CreatePaymentAddress(a.handle(), a.wallet(), a.str("config"), cb)
	},
	nullpay.AddRequestFees: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.AddRequestFees(a.handle(), a.wallet(), a.str("submitter_did"), a.str("req_json"),
			a.str("inputs_json"), a.str("outputs_json"), a.str("extra"), cb)
	},
	nullpay.ParseResponseWithFees: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.ParseResponseWithFees(a.handle(), a.str("resp_json"), cb)
	},
	nullpay.BuildGetPaymentSourcesRequest: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.BuildGetPaymentSourcesRequest(a.handle(), a.wallet(), a.str("submitter_did"), a.str("payment_address"), cb)
	},
	nullpay.ParseGetPaymentSourcesResponse: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.ParseGetPaymentSourcesResponse(a.handle(), a.str("resp_json"), cb)
	},
	nullpay.BuildPaymentRequest: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.BuildPaymentRequest(a.handle(), a.wallet(), a.str("submitter_did"), a.str("inputs_json"),
			a.str("outputs_json"), a.str("extra"), cb)
	},
	nullpay.ParsePaymentResponse: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.ParsePaymentResponse(a.handle(), a.str("resp_json"), cb)
	},
	nullpay.BuildMintRequest: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.BuildMintRequest(a.handle(), a.wallet(), a.str("submitter_did"), a.str("outputs_json"), a.str("extra"), cb)
	},
	nullpay.BuildSetTxnFeesRequest: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.BuildSetTxnFeesRequest(a.handle(), a.wallet(), a.str("submitter_did"), a.str("fees_json"), cb)
	},
	nullpay.BuildGetTxnFeesRequest: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.BuildGetTxnFeesRequest(a.handle(), a.wallet(), a.str("submitter_did"), cb)
	},
	nullpay.ParseGetTxnFeesResponse: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.ParseGetTxnFeesResponse(a.handle(), a.str("resp_json"), cb)
	},
	nullpay.BuildVerifyPaymentRequest: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.BuildVerifyPaymentRequest(a.handle(), a.wallet(), a.str("submitter_did"), a.str("receipt"), cb)
	},
	nullpay.ParseVerifyPaymentResponse: func(p *payment.Plugin, a args, cb nullpay.Callback) nullpay.Code {
		return p.ParseVerifyPaymentResponse(a.handle(), a.str("resp_json"), cb)
	},
}
