package logging

import (
	"reflect"
	"testing"

	"github.com/tarmac-project/nullpay"
	"github.com/tarmac-project/nullpay/hostmock"
)

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		namespace   string
		hostCall    func(string, string, string, []byte) ([]byte, error)
		wantNS      string
		wantHostPtr uintptr
	}{
		{
			name:      "custom namespace",
			namespace: "custom",
			wantNS:    "custom",
		},
		{
			name:        "default namespace with override",
			hostCall:    customHostCall,
			wantNS:      nullpay.DefaultNamespace,
			wantHostPtr: reflect.ValueOf(customHostCall).Pointer(),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := New(Config{SDKConfig: nullpay.RuntimeConfig{Namespace: tc.namespace}, HostCall: tc.hostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			impl, ok := c.(*client)
			if !ok {
				t.Fatalf("expected *client implementation, got %T", c)
			}

			if impl.runtime.Namespace != tc.wantNS {
				t.Fatalf("namespace mismatch: want %q, got %q", tc.wantNS, impl.runtime.Namespace)
			}

			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(impl.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestClientEmitsEntries(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name     string
		call     func(Client)
		function string
		want     string
	}{
		{"Info", func(c Client) { c.Info("plain") }, "Info", "[nullpay] plain"},
		{"Warn", func(c Client) { c.Warn("queue %s", "empty") }, "Warn", "[nullpay] queue empty"},
		{"Error", func(c Client) { c.Error("code %d", 112) }, "Error", "[nullpay] code 112"},
		{"Debug", func(c Client) { c.Debug("100%") }, "Debug", "[nullpay] 100%"},
		{"Trace", func(c Client) { c.Trace("t") }, "Trace", "[nullpay] t"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, err := hostmock.New(hostmock.Config{
				ExpectedNamespace:  "custom",
				ExpectedCapability: capabilityName,
			})
			if err != nil {
				t.Fatalf("hostmock: %v", err)
			}

			c, err := New(Config{
				SDKConfig: nullpay.RuntimeConfig{Namespace: "custom"},
				HostCall:  mock.HostCall,
				Prefix:    "[nullpay] ",
			})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			tc.call(c)

			calls := mock.CallsTo(capabilityName, tc.function)
			if len(calls) != 1 {
				t.Fatalf("expected 1 %s call, got %d", tc.function, len(calls))
			}
			if got := string(calls[0].Payload); got != tc.want {
				t.Fatalf("payload mismatch: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestClientLevelFilter(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall, Level: LevelWarn})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.Trace("dropped")
	c.Debug("dropped")
	c.Info("dropped")
	c.Warn("kept")
	c.Error("kept")

	if got := len(mock.Calls()); got != 2 {
		t.Fatalf("expected 2 host calls, got %d", got)
	}
}

func TestClientIgnoresHostFailure(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{Fail: true})
	if err != nil {
		t.Fatalf("hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	c.Error("still fine")
	if got := len(mock.Calls()); got != 1 {
		t.Fatalf("expected 1 host call, got %d", got)
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	c := Nop()
	c.Info("x")
	c.Error("%d", 1)
}
