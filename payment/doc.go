/*
Package payment implements the null payment method.

Every operation of a ledger client's payment-method interface is a method on
Plugin. Each takes a CommandHandle, its own arguments and a completion
Callback, and returns a Code immediately. Nothing is validated; each
operation does one of three things:

  - echo: report one of its arguments unchanged (AddRequestFees,
    ParseResponseWithFees, BuildPaymentRequest, ParsePaymentResponse,
    BuildSetTxnFeesRequest, BuildVerifyPaymentRequest,
    ParseVerifyPaymentResponse).
  - canned: report a fixed or randomly filled literal (CreatePaymentAddress,
    ParseGetPaymentSourcesResponse, ParseGetTxnFeesResponse).
  - delegate: ask the ledger.Builder for a GET_TXN request built for
    SubmitterDID and SeqNo (BuildGetPaymentSourcesRequest, BuildMintRequest,
    BuildGetTxnFeesRequest).

Before any of that happens the operation takes the head of its injection
queue. A scripted response is reported as is and the operation ends there,
returning the scripted code.

The callback fires exactly once per call. Echo and canned operations call it
before returning Success. Delegating operations return the builder's
dispatch status and the callback fires whenever the builder finishes. A nil
callback is a programming error and panics with nullpay.ErrCallbackNil.
*/
package payment
