package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hupe1980/sumserver"
	"github.com/hupe1980/sumserver/logging"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: sumserver <port>")
		os.Exit(1)
	}

	port, err := strconv.Atoi(os.Args[1])
	if err != nil || port < 0 || port > 65535 {
		fmt.Fprintf(os.Stderr, "invalid port %q\n", os.Args[1])
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)

	srv := sumserver.New(func(o *sumserver.Options) {
		o.Logger = logger
	})

	if err := srv.Start(port); err != nil {
		logger.Error("failed to start server: %v", err)
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	srv.Stop()

	// Accepting has stopped; let the sessions still in flight run to their
	// natural end before the process exits.
	srv.Wait()
}
