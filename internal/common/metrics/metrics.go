package metrics

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	RegisterFiberMiddleware(app *fiber.App, path, serviceName, namespace string) func(ctx *fiber.Ctx) error
	PrometheusRegisterer() prometheus.Registerer
	GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics
	GetCommitPrometheus() *CommitPrometheusMetrics
}

type metrics struct {
	reg               prometheus.Registerer
	httpClientMetrics *HTTPClientPrometheusMetrics
	commitMetrics     *CommitPrometheusMetrics
}

func New() Metrics {
	reg := prometheus.DefaultRegisterer
	return &metrics{
		reg:               reg,
		httpClientMetrics: newHTTPClientPrometheusMetrics(reg),
		commitMetrics:     newCommitPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) RegisterFiberMiddleware(app *fiber.App, path, serviceName, namespace string) func(ctx *fiber.Ctx) error {
	prom := fiberprometheus.NewWithRegistry(m.reg, BuildFQName(serviceName, namespace), FlattenName(serviceName), "http", nil)
	prom.RegisterAt(app, path)
	return prom.Middleware
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetHTTPClientPrometheus() *HTTPClientPrometheusMetrics {
	return m.httpClientMetrics
}

func (m *metrics) GetCommitPrometheus() *CommitPrometheusMetrics {
	return m.commitMetrics
}
