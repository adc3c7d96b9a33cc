package ledger

import (
	"errors"
	"fmt"

	"github.com/tarmac-project/nullpay"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldSubmitterDID = "submitter_did"
	fieldSeqNo        = "seq_no"
	fieldCode         = "code"
	fieldRequest      = "request"
)

var (
	// ErrMarshalRequest wraps failures while encoding the request payload.
	ErrMarshalRequest = errors.New("failed to marshal request")

	// ErrUnmarshalResponse wraps failures while decoding the host response.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")
)

// Request is the payload sent to the host's build_get_txn_request function.
type Request struct {
	SubmitterDID string
	SeqNo        int32
}

// Marshal encodes r as a protobuf Struct.
func (r Request) Marshal() ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		fieldSubmitterDID: r.SubmitterDID,
		fieldSeqNo:        r.SeqNo,
	})
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}
	b, err := proto.Marshal(s)
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}
	return b, nil
}

// UnmarshalRequest decodes a payload produced by Request.Marshal.
func UnmarshalRequest(b []byte) (Request, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return Request{}, errors.Join(ErrUnmarshalResponse, err)
	}
	did, err := stringField(&s, fieldSubmitterDID)
	if err != nil {
		return Request{}, err
	}
	seq, err := numberField(&s, fieldSeqNo)
	if err != nil {
		return Request{}, err
	}
	return Request{SubmitterDID: did, SeqNo: int32(seq)}, nil
}

// Reply is the host's answer: the builder's result code and the built request.
type Reply struct {
	Code    nullpay.Code
	Request string
}

// Marshal encodes r as a protobuf Struct.
func (r Reply) Marshal() ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		fieldCode:    int32(r.Code),
		fieldRequest: r.Request,
	})
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}
	b, err := proto.Marshal(s)
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}
	return b, nil
}

// UnmarshalReply decodes a host reply. A missing code is invalid; a missing
// request decodes as empty.
func UnmarshalReply(b []byte) (Reply, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return Reply{}, errors.Join(nullpay.ErrHostResponseInvalid, ErrUnmarshalResponse, err)
	}
	code, err := numberField(&s, fieldCode)
	if err != nil {
		return Reply{}, errors.Join(nullpay.ErrHostResponseInvalid, err)
	}
	r := Reply{Code: nullpay.Code(code)}
	if v, ok := s.GetFields()[fieldRequest]; ok {
		r.Request = v.GetStringValue()
	}
	return r, nil
}

func stringField(s *structpb.Struct, name string) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrUnmarshalResponse, name)
	}
	if _, ok := v.GetKind().(*structpb.Value_StringValue); !ok {
		return "", fmt.Errorf("%w: field %q is not a string", ErrUnmarshalResponse, name)
	}
	return v.GetStringValue(), nil
}

func numberField(s *structpb.Struct, name string) (float64, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrUnmarshalResponse, name)
	}
	if _, ok := v.GetKind().(*structpb.Value_NumberValue); !ok {
		return 0, fmt.Errorf("%w: field %q is not a number", ErrUnmarshalResponse, name)
	}
	return v.GetNumberValue(), nil
}
