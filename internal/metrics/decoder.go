package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btccodec",
		Subsystem: "decoder",
		Name:      "transactions_total",
		Help:      "Count of transaction decode attempts.",
	}, []string{"network", "source", "status"})

	decodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btccodec",
		Subsystem: "decoder",
		Name:      "transaction_duration_seconds",
		Help:      "Duration of decoding a single transaction.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"network", "source", "status"})

	decodeTxSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btccodec",
		Subsystem: "decoder",
		Name:      "transaction_size_bytes",
		Help:      "Serialized size of decoded transactions.",
		Buckets:   prometheus.ExponentialBuckets(64, 2, 14), // 64B..512KiB
	}, []string{"network"})

	decodeOutputsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btccodec",
		Subsystem: "decoder",
		Name:      "outputs_total",
		Help:      "Count of decoded outputs by script type.",
	}, []string{"network", "script_type"})

	decodeBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btccodec",
		Subsystem: "decoder",
		Name:      "batch_size",
		Help:      "Number of transactions per decode batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network", "status"})
)

// Decoder tracks transaction decoding.
type Decoder struct {
	network string
}

// NewDecoder constructs a metrics collector for the transaction decoder.
func NewDecoder(network string) *Decoder {
	if network == "" {
		network = "unknown"
	}
	return &Decoder{network: network}
}

// ObserveDecode records one decode attempt. source is where the raw bytes
// came from, e.g. "hex" or "rpc".
func (m Decoder) ObserveDecode(source string, err error, started time.Time) {
	status := statusOf(err)
	decodeTotal.WithLabelValues(m.network, source, status).Inc()
	decodeDuration.WithLabelValues(m.network, source, status).Observe(time.Since(started).Seconds())
}

// ObserveTransaction records the size and output script types of a decoded
// transaction.
func (m Decoder) ObserveTransaction(size int, scriptTypes []string) {
	decodeTxSize.WithLabelValues(m.network).Observe(float64(size))
	for _, st := range scriptTypes {
		decodeOutputsTotal.WithLabelValues(m.network, st).Inc()
	}
}

// ObserveBatch records the outcome and size of a batch decode.
func (m Decoder) ObserveBatch(err error, size int) {
	decodeBatchSize.WithLabelValues(m.network, statusOf(err)).Observe(float64(size))
}
