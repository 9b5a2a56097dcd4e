// Command activity-consumer drains workout activity events into a rotated
// activity log.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/WorldsAreYours/fit-and-easy/internal/config"
	"github.com/WorldsAreYours/fit-and-easy/internal/logging"
	"github.com/WorldsAreYours/fit-and-easy/internal/queue"
)

func main() {
	_ = godotenv.Load()

	logging.Setup(logging.LoggerSetupParams{LogToStdout: true, LogLevel: os.Getenv("LOG_LEVEL")})
	qcfg := config.LoadQueueConfig()

	out := logging.NewFileLogger(qcfg.ActivityLogFile, false)
	consumer := queue.NewConsumer(qcfg.URL, qcfg.Queue, out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("consuming [%s], writing to %s", qcfg.Queue, qcfg.ActivityLogFile)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer: %s", err)
	}
	log.Info("consumer stopped")
}
