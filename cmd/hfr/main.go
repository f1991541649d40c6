package main

import (
	"context"

	"github.com/punoko/hfr/cmd/hfr/commands"
	"github.com/punoko/hfr/lib/serviceutil"
	"github.com/punoko/hfr/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)

	ctx := serviceutil.SignalContext()
	tel, err := telemetry.SetupFromEnv(ctx, "hfr")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
