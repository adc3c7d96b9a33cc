package metrics

import (
	"errors"
	"regexp"
	"time"

	"github.com/tarmac-project/nullpay"
	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"
	fnGauge        = "gauge"
	fnHistogram    = "histogram"
	actionInc      = "inc"
	actionDec      = "dec"
)

var (
	// ErrInvalidMetricName indicates a metric name that does not match the supported format.
	ErrInvalidMetricName = errors.New("metric name is invalid")

	isMetricNameValid = regexp.MustCompile(`^[a-zA-Z0-9_:][a-zA-Z0-9_:]*$`)
)

// HostCall defines the waPC host function signature used by metrics operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client defines the metrics capability interface.
type Client interface {
	// NewCounter creates a named counter metric handle.
	NewCounter(name string) (*Counter, error)

	// NewGauge creates a named gauge metric handle.
	NewGauge(name string) (*Gauge, error)

	// NewHistogram creates a named histogram metric handle.
	NewHistogram(name string) (*Histogram, error)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig nullpay.RuntimeConfig

	// HostCall overrides the waPC host function used for metrics operations.
	HostCall HostCall
}

// HostMetrics is the metrics capability client implementation.
type HostMetrics struct {
	runtime  nullpay.RuntimeConfig
	hostCall HostCall
}

var _ Client = (*HostMetrics)(nil)

// New creates a metrics client with namespace defaults and optional host-call override.
func New(config Config) (*HostMetrics, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &HostMetrics{runtime: config.SDKConfig.WithDefaults(), hostCall: hostCall}, nil
}

// Discard returns a client whose handles never reach the host.
func Discard() *HostMetrics {
	return &HostMetrics{runtime: nullpay.RuntimeConfig{}.WithDefaults()}
}

// handle is the state shared by every metric kind.
type handle struct {
	name      string
	namespace string
	hostCall  HostCall
}

// send is best-effort. Emission never fails the caller.
func (h handle) send(fn string, payload []byte, err error) {
	if err != nil || h.hostCall == nil {
		return
	}
	_, _ = h.hostCall(h.namespace, capabilityName, fn, payload)
}

func (c *HostMetrics) handle(name string) (handle, error) {
	if !isMetricNameValid.MatchString(name) {
		return handle{}, ErrInvalidMetricName
	}
	return handle{name: name, namespace: c.runtime.Namespace, hostCall: c.hostCall}, nil
}

// Counter is a named counter metric handle.
type Counter struct{ handle }

// NewCounter creates a named counter metric handle.
func (c *HostMetrics) NewCounter(name string) (*Counter, error) {
	h, err := c.handle(name)
	if err != nil {
		return nil, err
	}
	return &Counter{h}, nil
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	payload, err := (&proto.MetricsCounter{Name: c.name}).MarshalVT()
	c.send(fnCounter, payload, err)
}

// Gauge is a named gauge metric handle.
type Gauge struct{ handle }

// NewGauge creates a named gauge metric handle.
func (c *HostMetrics) NewGauge(name string) (*Gauge, error) {
	h, err := c.handle(name)
	if err != nil {
		return nil, err
	}
	return &Gauge{h}, nil
}

// Inc increments the gauge by one.
func (g *Gauge) Inc() { g.emit(actionInc) }

// Dec decrements the gauge by one.
func (g *Gauge) Dec() { g.emit(actionDec) }

func (g *Gauge) emit(action string) {
	payload, err := (&proto.MetricsGauge{Name: g.name, Action: action}).MarshalVT()
	g.send(fnGauge, payload, err)
}

// Histogram is a named histogram metric handle.
type Histogram struct{ handle }

// NewHistogram creates a named histogram metric handle.
func (c *HostMetrics) NewHistogram(name string) (*Histogram, error) {
	h, err := c.handle(name)
	if err != nil {
		return nil, err
	}
	return &Histogram{h}, nil
}

// Observe records a value for the histogram.
func (h *Histogram) Observe(value float64) {
	payload, err := (&proto.MetricsHistogram{Name: h.name, Value: value}).MarshalVT()
	h.send(fnHistogram, payload, err)
}

// ObserveSince records the seconds elapsed since start.
func (h *Histogram) ObserveSince(start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
