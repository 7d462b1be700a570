package main

import (
	"os"
	"os/signal"

	"github.com/habedi/gokdtree/cmd"
	_ "github.com/habedi/gokdtree/core"
	"github.com/rs/zerolog/log"
)

// main sets up the interrupt handler and runs the demo CLI. Logging is
// configured by core's init, gated on GOKDTREE_LOG.
func main() {
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	go listenForInterrupt(stopChan)

	cmd.Execute()
}

func listenForInterrupt(stopChan chan os.Signal) {
	<-stopChan
	log.Fatal().Msg("interrupt signal received, exiting")
}
