// Public domain.

package main

import (
	"github.com/soniakeys/exit"

	"github.com/JulienPeloton/activity-for-brokers/cmd/cometcurve/commands"
)

func main() {
	defer exit.Handler()
	if err := commands.Execute(); err != nil {
		exit.Log(err)
	}
}
