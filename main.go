package main

import (
	"context"

	"alpstech-server/biz/adaptor"
	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/samber/lo"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	h := server.Default(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(c.MetricsListenOn, "/metrics")),
	)

	h.Use(func(ctx context.Context, c *app.RequestContext) {
		c.Next(adaptor.InjectContext(ctx, c))
	})
	h.Use(cors.New(cors.Config{
		AllowOrigins:     lo.Ternary(len(c.Cors.Origins) > 0, c.Cors.Origins, []string{"http://localhost:8080", "http://localhost:3000"}),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	h.Use(adaptor.AccessLog(c))

	customizedRegister(h)
	h.Spin()
}
