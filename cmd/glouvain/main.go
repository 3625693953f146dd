// Command glouvain detects communities in multilayer networks read from an
// edge list (layer,actor1,actor2[,weight]).
//
//	glouvain detect --gamma 1 --omega 0.5 --seed 7 net.csv
//	glouvain detect -c glouvain.yaml --output-format json -o out.json
//	glouvain version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "glouvain:", err)
		stop()
		os.Exit(1)
	}
}
