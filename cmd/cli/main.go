package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/devprofiler/internal/client/cli"
)

func main() {

	ctx := context.Background()
	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}

}
