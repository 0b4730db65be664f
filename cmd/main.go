package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/finvent/paystream/config"
	"github.com/finvent/paystream/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	myApp := &app.App{}
	myApp.Initialize(cfg)

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		<-sigs
		myApp.Shutdown()
		os.Exit(0)
	}()

	myApp.Run()
}
