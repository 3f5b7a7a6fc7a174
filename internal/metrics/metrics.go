package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// AppMetrics holds the service's instruments. A nil *AppMetrics is valid and
// records nothing, so tests and metrics-less deployments skip the exporter.
type AppMetrics struct {
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestsErrors  metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram

	OrdersPlaced      metric.Int64Counter
	PaymentsCompleted metric.Int64Counter
	RevenueTotal      metric.Float64Counter
	WishlistToggles   metric.Int64Counter
}

// Init builds a meter provider with a periodic OTLP/HTTP reader and creates
// the instruments. Call the returned shutdown on exit.
func Init(ctx context.Context, endpoint, serviceName string) (*AppMetrics, func(context.Context) error, error) {
	exporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(endpoint),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, nil, fmt.Errorf("build resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))),
	)
	otel.SetMeterProvider(provider)
	meter := provider.Meter(serviceName)

	m := &AppMetrics{}
	if m.HTTPRequestsTotal, err = meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Total number of HTTP requests"), metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}
	if m.HTTPRequestsErrors, err = meter.Int64Counter("http.server.request.error.count",
		metric.WithDescription("Total number of HTTP error responses"), metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}
	if m.HTTPRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in milliseconds"), metric.WithUnit("ms")); err != nil {
		return nil, nil, err
	}
	if m.OrdersPlaced, err = meter.Int64Counter("orders_placed_total",
		metric.WithDescription("Total number of rental orders placed"), metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}
	if m.PaymentsCompleted, err = meter.Int64Counter("payments_completed_total",
		metric.WithDescription("Total number of completed payments"), metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}
	if m.RevenueTotal, err = meter.Float64Counter("revenue_total",
		metric.WithDescription("Total amount paid across completed payments")); err != nil {
		return nil, nil, err
	}
	if m.WishlistToggles, err = meter.Int64Counter("wishlist_toggles_total",
		metric.WithDescription("Total number of wishlist toggle operations"), metric.WithUnit("1")); err != nil {
		return nil, nil, err
	}

	return m, provider.Shutdown, nil
}

// Middleware records request count, error count and duration per route.
func (m *AppMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		attrs := metric.WithAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.route", c.Route().Path),
			attribute.Int("http.status_code", status),
		)
		ctx := c.UserContext()
		m.HTTPRequestsTotal.Add(ctx, 1, attrs)
		if status >= 400 {
			m.HTTPRequestsErrors.Add(ctx, 1, attrs)
		}
		m.HTTPRequestDuration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
		return err
	}
}

// OrderPlaced counts a placed order.
func (m *AppMetrics) OrderPlaced(ctx context.Context) {
	if m == nil {
		return
	}
	m.OrdersPlaced.Add(ctx, 1)
}

// PaymentCompleted counts a payment and its revenue.
func (m *AppMetrics) PaymentCompleted(ctx context.Context, amount float64) {
	if m == nil {
		return
	}
	m.PaymentsCompleted.Add(ctx, 1)
	m.RevenueTotal.Add(ctx, amount)
}

// WishlistToggled counts a toggle, tagged with the resulting membership.
func (m *AppMetrics) WishlistToggled(ctx context.Context, member bool) {
	if m == nil {
		return
	}
	m.WishlistToggles.Add(ctx, 1, metric.WithAttributes(attribute.Bool("member", member)))
}
