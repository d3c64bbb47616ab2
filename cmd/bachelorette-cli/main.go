package main

import (
	"context"

	"bachelorette-db/cmd/bachelorette-cli/cmd"
	"bachelorette-db/lib/util/serviceutil"
)

func main() {
	ctx := serviceutil.SignalContext(context.Background())
	cmd.Execute(ctx)
}
