package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/kestrelvision/kestreld/internal/config"
	"github.com/kestrelvision/kestreld/pkg/frameprovider"
	"github.com/kestrelvision/kestreld/pkg/kestrel"
	"github.com/kestrelvision/kestreld/pkg/log"
	"github.com/kestrelvision/kestreld/pkg/video/videobackend"
	"github.com/tacusci/logging/v2"
)

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	log.Info("Starting kestrel daemon...")

	server := kestrel.NewServer(
		config.DefaultResolver(), videobackend.Resolve(os.Getenv("KESTREL_VIDEO_BACKEND")),
	)
	if err := server.LoadConfiguration(); err != nil {
		log.Fatal(err.Error())
	}

	for _, err := range server.Build() {
		log.Error(err.Error())
	}

	stop := make(chan interface{})
	wg := sync.WaitGroup{}
	for _, provider := range server.Providers() {
		wg.Add(1)
		go pullFrames(&wg, stop, provider)
	}

	killSignal := <-interrupt
	fmt.Print("\r")
	log.Error("Received signal: %s", killSignal)

	close(stop)
	wg.Wait()
	<-server.Shutdown()

	log.Info("Shutdown successful... BYE! 👋")
}

// pullFrames drives a provider the way a pipeline stage would,
// logging the served rate once a second so pacing is observable.
func pullFrames(wg *sync.WaitGroup, stop chan interface{}, provider frameprovider.Provider) {
	defer wg.Done()
	served := 0
	windowStart := time.Now()
	for {
		select {
		case <-stop:
			return
		default:
			frame := provider.Get()
			frame.Close()
			served++
			if elapsed := time.Since(windowStart); elapsed >= time.Second {
				log.Info("[%s] served %d frames in %s", provider.Name(), served, elapsed.Round(time.Millisecond))
				served = 0
				windowStart = time.Now()
			}
		}
	}
}

func init() {
	logging.ColorLogLevelLabelOnly = true

	switch strings.ToLower(os.Getenv("KESTREL_LOGGING_LEVEL")) {
	case "info":
		logging.CurrentLoggingLevel = logging.InfoLevel
	case "debug":
		logging.CurrentLoggingLevel = logging.DebugLevel
	case "warn":
		logging.CurrentLoggingLevel = logging.WarnLevel
	default:
		logging.CurrentLoggingLevel = logging.InfoLevel
	}
}
