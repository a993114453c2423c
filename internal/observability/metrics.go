package observability

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/params"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	sendCounter         *prometheus.CounterVec
	sponsoredCounter    prometheus.Counter
	relayerBalanceGauge prometheus.Gauge
	anomalyCounter      *prometheus.CounterVec
)

// Init registers all Prometheus collectors.
func Init() {
	registerOnce.Do(func() {
		sendCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_sends_total",
			Help: "Send attempts by final outcome",
		}, []string{"outcome"})

		sponsoredCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallet_sponsored_sends_total",
			Help: "Sends where the relayer advanced gas",
		})

		relayerBalanceGauge = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "relayer_native_balance",
			Help: "Relayer account native balance, in whole native units",
		})

		anomalyCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_anomalies_total",
			Help: "Invariant violations observed by the ledger",
		}, []string{"kind"})

		prometheus.MustRegister(
			sendCounter,
			sponsoredCounter,
			relayerBalanceGauge,
			anomalyCounter,
		)
	})
}

func IncrementSend(outcome string) {
	if sendCounter == nil {
		return
	}
	sendCounter.WithLabelValues(outcome).Inc()
}

func IncrementSponsoredSend() {
	if sponsoredCounter == nil {
		return
	}
	sponsoredCounter.Inc()
}

func SetRelayerBalance(wei *big.Int) {
	if relayerBalanceGauge == nil || wei == nil {
		return
	}
	native, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether)).Float64()
	relayerBalanceGauge.Set(native)
}

func IncrementAnomaly(kind string) {
	if anomalyCounter == nil {
		return
	}
	anomalyCounter.WithLabelValues(kind).Inc()
}
