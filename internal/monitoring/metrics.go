package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventzen_bookings_created_total",
			Help: "Bookings created, by target kind",
		},
		[]string{"kind"},
	)

	paymentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventzen_payments_processed_total",
			Help: "Payment confirmations, by outcome",
		},
		[]string{"status"},
	)

	paymentIntents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventzen_payment_intents_total",
			Help: "Payment intents issued",
		},
	)

	notificationPushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventzen_notification_pushes_total",
			Help: "Live notification push attempts, by delivery result",
		},
		[]string{"delivered"},
	)

	wsConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventzen_ws_connections",
			Help: "Currently open notification websocket connections",
		},
	)
)

func TrackBookingCreated(kind string) { bookingsCreated.WithLabelValues(kind).Inc() }

func TrackPaymentProcessed(status string) { paymentsProcessed.WithLabelValues(status).Inc() }

func TrackPaymentIntent() { paymentIntents.Inc() }

func TrackNotificationPush(delivered bool) {
	if delivered {
		notificationPushes.WithLabelValues("yes").Inc()
	} else {
		notificationPushes.WithLabelValues("no").Inc()
	}
}

func SetWSConnections(n int) { wsConnections.Set(float64(n)) }
