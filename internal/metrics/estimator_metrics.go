// Package metrics defines estimator-specific metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Estimator counter vectors
var (
	EstimatorVotesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimator_votes_total",
		Help:      "Total number of estimator ballots by estimator and whether a vote was cast",
	}, []string{"estimator", "voted"})

	EstimatorAgreementTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimator_agreement_total",
		Help:      "Total number of times an estimator backed the chosen option",
	}, []string{"estimator", "variant"})
)

// RecordEstimatorVote records one estimator ballot.
func RecordEstimatorVote(estimator string, voted bool) {
	label := "false"
	if voted {
		label = "true"
	}
	EstimatorVotesTotal.WithLabelValues(estimator, label).Inc()
}

// RecordEstimatorAgreement records an estimator backing the chosen option.
func RecordEstimatorAgreement(estimator, variant string) {
	EstimatorAgreementTotal.WithLabelValues(estimator, variant).Inc()
}
