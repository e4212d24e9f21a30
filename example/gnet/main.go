// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lakefield/dayroll"
	"github.com/lakefield/dayroll/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger := dayroll.NewLogger()
	err := logger.ApplyConfigString(
		"directory=./gnet_logs",
		"level=debug",
		"default_target=EchoServer",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	adapter := compat.NewGnetAdapter(logger)

	// gnet internal logs now flow through the same formatter, file sink,
	// and daily rotation as the application's own events
	err = gnet.Run(&echoServer{}, "tcp://:9000",
		gnet.WithLogger(adapter),
		gnet.WithMulticore(true),
	)
	if err != nil {
		logger.Error("server exited", err)
	}
}
