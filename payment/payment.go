package payment

import (
	"fmt"
	"math/rand/v2"

	"github.com/tarmac-project/nullpay"
	"github.com/tarmac-project/nullpay/inject"
	"github.com/tarmac-project/nullpay/ledger"
	"github.com/tarmac-project/nullpay/logging"
	"github.com/tarmac-project/nullpay/metrics"
)

const (
	// SubmitterDID is the identity every delegated ledger request is built for.
	SubmitterDID = "null_payment_plugin"

	// SeqNo is the transaction sequence number every delegated ledger request asks for.
	SeqNo int32 = 1

	// AddressPrefix starts every address CreatePaymentAddress hands out.
	AddressPrefix = "pay:null:"

	// RandomLength is the length of the random part of addresses and sources.
	RandomLength = 15

	// TxnFeesResponse is the fee schedule ParseGetTxnFeesResponse reports.
	TxnFeesResponse = `{"txnType1":1, "txnType2":2, "txnType3":3}`

	// paymentSourcesFormat lists two sources; each extra is a random string.
	paymentSourcesFormat = `[{"input":"pov:null:1", "amount":1, "extra":"%s"}, {"input":"pov:null:2", "amount":2, "extra":"%s"}]`

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// HostCall defines the waPC host function signature shared by the plugin's host clients.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how a Plugin is assembled. Nil collaborators are built
// from SDKConfig and HostCall.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig nullpay.RuntimeConfig

	// HostCall overrides the waPC host function for the default builder,
	// logger and metrics client.
	HostCall HostCall

	// Registry holds the scripted responses. Nil gives the plugin a private one.
	Registry *inject.Registry

	// Builder is the ledger-request builder delegating operations call.
	Builder ledger.Builder

	// Logger receives plugin log entries.
	Logger logging.Client

	// Metrics creates the plugin's metric handles.
	Metrics metrics.Client

	// RandomString returns n characters for synthetic addresses and sources.
	RandomString func(n int) string
}

// Plugin answers payment operations with echoed, canned or delegated
// responses after consulting its injection queues.
type Plugin struct {
	registry *inject.Registry
	builder  ledger.Builder
	log      logging.Client
	random   func(int) string
	stats    stats
}

type stats struct {
	operations *metrics.Counter
	injected   *metrics.Counter
	inflight   *metrics.Gauge
	latency    *metrics.Histogram
}

// New assembles a Plugin.
func New(cfg Config) (*Plugin, error) {
	runtime := cfg.SDKConfig.WithDefaults()

	p := &Plugin{
		registry: cfg.Registry,
		builder:  cfg.Builder,
		log:      cfg.Logger,
		random:   cfg.RandomString,
	}

	if p.registry == nil {
		p.registry = inject.NewRegistry()
	}

	if p.random == nil {
		p.random = randomString
	}

	if p.log == nil {
		l, err := logging.New(logging.Config{SDKConfig: runtime, HostCall: cfg.HostCall, Prefix: "[nullpay] "})
		if err != nil {
			return nil, fmt.Errorf("could not create logger: %w", err)
		}
		p.log = l
	}

	if p.builder == nil {
		b, err := ledger.New(ledger.Config{SDKConfig: runtime, HostCall: ledger.HostCall(cfg.HostCall), Logger: p.log})
		if err != nil {
			return nil, fmt.Errorf("could not create ledger builder: %w", err)
		}
		p.builder = b
	}

	m := cfg.Metrics
	if m == nil {
		hm, err := metrics.New(metrics.Config{SDKConfig: runtime, HostCall: metrics.HostCall(cfg.HostCall)})
		if err != nil {
			return nil, fmt.Errorf("could not create metrics client: %w", err)
		}
		m = hm
	}

	var err error
	if p.stats.operations, err = m.NewCounter("nullpay_operations_total"); err != nil {
		return nil, err
	}
	if p.stats.injected, err = m.NewCounter("nullpay_injected_total"); err != nil {
		return nil, err
	}
	if p.stats.inflight, err = m.NewGauge("nullpay_ledger_inflight"); err != nil {
		return nil, err
	}
	if p.stats.latency, err = m.NewHistogram("nullpay_ledger_seconds"); err != nil {
		return nil, err
	}

	return p, nil
}

// Registry returns the registry holding the plugin's injection queues.
func (p *Plugin) Registry() *inject.Registry { return p.registry }

// Queue returns the injection queue for kind.
func (p *Plugin) Queue(kind nullpay.Kind) *inject.Queue { return p.registry.Queue(kind) }

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
