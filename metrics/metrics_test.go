package metrics

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tarmac-project/nullpay"
	"github.com/tarmac-project/nullpay/hostmock"
	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
)

func TestNew(t *testing.T) {
	t.Parallel()

	customHostCall := func(string, string, string, []byte) ([]byte, error) {
		return nil, nil
	}

	tt := []struct {
		name        string
		namespace   string
		hostCall    HostCall
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

			if c.runtime.Namespace != tc.wantNS {
				t.Fatalf("namespace mismatch: want %q, got %q", tc.wantNS, c.runtime.Namespace)
			}

			if tc.wantHostPtr != 0 {
				if got := reflect.ValueOf(c.hostCall).Pointer(); got != tc.wantHostPtr {
					t.Fatalf("hostcall pointer mismatch: want %v, got %v", tc.wantHostPtr, got)
				}
			}
		})
	}
}

func TestMetricConstructors(t *testing.T) {
	t.Parallel()

	c := Discard()

	tt := []struct {
		name        string
		constructor func(string) error
		metricName  string
		wantErr     error
	}{
		{
			name: "counter valid",
			constructor: func(name string) error {
				_, err := c.NewCounter(name)
				return err
			},
			metricName: "nullpay_operations_total",
		},
		{
			name: "gauge valid",
			constructor: func(name string) error {
				_, err := c.NewGauge(name)
				return err
			},
			metricName: "nullpay_ledger_inflight",
		},
		{
			name: "histogram valid",
			constructor: func(name string) error {
				_, err := c.NewHistogram(name)
				return err
			},
			metricName: "nullpay_ledger_seconds",
		},
		{
			name: "counter empty name",
			constructor: func(name string) error {
				_, err := c.NewCounter(name)
				return err
			},
			metricName: "",
			wantErr:    ErrInvalidMetricName,
		},
		{
			name: "gauge whitespace name",
			constructor: func(name string) error {
				_, err := c.NewGauge(name)
				return err
			},
			metricName: " \n\t ",
			wantErr:    ErrInvalidMetricName,
		},
		{
			name: "histogram dashed name",
			constructor: func(name string) error {
				_, err := c.NewHistogram(name)
				return err
			},
			metricName: "ledger-seconds",
			wantErr:    ErrInvalidMetricName,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := tc.constructor(tc.metricName); !errors.Is(err, tc.wantErr) {
				t.Fatalf("unexpected error: want %v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCounterInc(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{
		ExpectedNamespace:  nullpay.DefaultNamespace,
		ExpectedCapability: capabilityName,
		ExpectedFunction:   fnCounter,
		PayloadValidator: func(payload []byte) error {
			var req proto.MetricsCounter
			if err := req.UnmarshalVT(payload); err != nil {
				return err
			}
			if req.GetName() != "nullpay_operations_total" {
				return errors.New("metric name mismatch")
			}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	counter, err := c.NewCounter("nullpay_operations_total")
	if err != nil {
		t.Fatalf("NewCounter returned error: %v", err)
	}

	counter.Inc()
	counter.Inc()

	if got := len(mock.CallsTo(capabilityName, fnCounter)); got != 2 {
		t.Fatalf("expected 2 counter calls, got %d", got)
	}
}

func TestCounterIncHostFailure(t *testing.T) {
	t.Parallel()

	mock, err := hostmock.New(hostmock.Config{
		Fail:  true,
		Error: errors.New("host failure should not panic"),
	})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	counter, err := c.NewCounter("nullpay_injected_total")
	if err != nil {
		t.Fatalf("NewCounter returned error: %v", err)
	}

	counter.Inc()
}

func TestGaugeActions(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name           string
		invoke         func(*Gauge)
		expectedAction string
	}{
		{name: "inc", invoke: func(g *Gauge) { g.Inc() }, expectedAction: actionInc},
		{name: "dec", invoke: func(g *Gauge) { g.Dec() }, expectedAction: actionDec},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mock, err := hostmock.New(hostmock.Config{
				ExpectedCapability: capabilityName,
				ExpectedFunction:   fnGauge,
				PayloadValidator: func(payload []byte) error {
					var req proto.MetricsGauge
					if err := req.UnmarshalVT(payload); err != nil {
						return err
					}
					if req.GetName() != "nullpay_ledger_inflight" {
						return errors.New("metric name mismatch")
					}
					if req.GetAction() != tc.expectedAction {
						return errors.New("action mismatch")
					}
					return nil
				},
			})
			if err != nil {
				t.Fatalf("failed to create hostmock: %v", err)
			}

			c, err := New(Config{HostCall: mock.HostCall})
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			gauge, err := c.NewGauge("nullpay_ledger_inflight")
			if err != nil {
				t.Fatalf("NewGauge returned error: %v", err)
			}

			tc.invoke(gauge)

			if got := len(mock.Calls()); got != 1 {
				t.Fatalf("expected 1 host call, got %d", got)
			}
		})
	}
}

func TestHistogramObserve(t *testing.T) {
	t.Parallel()

	var observed []float64
	mock, err := hostmock.New(hostmock.Config{
		ExpectedCapability: capabilityName,
		ExpectedFunction:   fnHistogram,
		PayloadValidator: func(payload []byte) error {
			var req proto.MetricsHistogram
			if err := req.UnmarshalVT(payload); err != nil {
				return err
			}
			if req.GetName() != "nullpay_ledger_seconds" {
				return errors.New("metric name mismatch")
			}
			observed = append(observed, req.GetValue())
			return nil
		},
	})
	if err != nil {
		t.Fatalf("failed to create hostmock: %v", err)
	}

	c, err := New(Config{HostCall: mock.HostCall})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	histogram, err := c.NewHistogram("nullpay_ledger_seconds")
	if err != nil {
		t.Fatalf("NewHistogram returned error: %v", err)
	}

	histogram.Observe(42.5)
	histogram.ObserveSince(time.Now().Add(-time.Second))

	if len(observed) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(observed))
	}
	if observed[0] != 42.5 {
		t.Fatalf("value mismatch: want 42.5, got %v", observed[0])
	}
	if observed[1] < 1 {
		t.Fatalf("expected elapsed seconds >= 1, got %v", observed[1])
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	c := Discard()
	counter, err := c.NewCounter("nullpay_operations_total")
	if err != nil {
		t.Fatalf("NewCounter returned error: %v", err)
	}
	counter.Inc()

	gauge, err := c.NewGauge("nullpay_ledger_inflight")
	if err != nil {
		t.Fatalf("NewGauge returned error: %v", err)
	}
	gauge.Inc()
	gauge.Dec()
}
