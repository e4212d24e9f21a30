// FILE: example/fasthttp/main.go
package main

import (
	"github.com/valyala/fasthttp"

	"github.com/lakefield/dayroll"
	"github.com/lakefield/dayroll/compat"
)

func main() {
	logger := dayroll.NewLogger()
	err := logger.ApplyConfigString(
		"directory=./fasthttp_logs",
		"level=info",
		"default_target=HTTPServer",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	adapter := compat.NewFastHTTPAdapter(logger)

	server := &fasthttp.Server{
		Logger: adapter,
		Handler: func(ctx *fasthttp.RequestCtx) {
			logger.Info("request", string(ctx.Path()))
			ctx.WriteString("ok")
		},
	}

	logger.Info("listening on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Error("server exited", err)
	}
}
