package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"green-link/cmd/api/wire"
	"green-link/cmd/config"
	"green-link/internal/infra/async"
	"green-link/internal/infra/httpserver"
	"green-link/internal/infra/node"

	"gopkg.in/natefinch/lumberjack.v2"
)

const _flushTimeout = 5 * time.Second

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(logOutput(config.General.LogFile), &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", node.Version)})
	slog.SetDefault(slog.New(handler))
	slog.Info("green link is initializing", slog.String("node_id", node.GetNodeInfo().ID))
	slog.Debug("config loaded", "data", config)

	shutdownTelemetry, err := startTelemetry(context.Background(), config.Telemetry)
	if err != nil {
		panic(err)
	}

	internalBroker := async.NewLocalBroker()

	httpServer := httpserver.NewServer(
		fmt.Sprintf(":%d", config.General.Port),
		handleWireInjector(wire.InitializeCropController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeItemController(internalBroker)).(httpserver.Controller),
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()
	slog.Info("http server listening", slog.Int("port", config.General.Port))

	workers := []async.Worker{
		handleWireInjector(wire.InitializeLowStockAlertWorker(internalBroker)).(async.Worker),
		handleWireInjector(wire.InitializeHarvestReminderWorker()).(async.Worker),
		handleWireInjector(wire.InitializeReportArchiveWorker(internalBroker)).(async.Worker),
	}

	var wg sync.WaitGroup
	for _, worker := range workers {
		wg.Add(1)
		go worker.Run(appCtx, wg.Done)
	}

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()

	cancelFn()
	wg.Wait()
	for _, worker := range workers {
		worker.Shutdown()
	}
	internalBroker.Stop()

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), _flushTimeout)
	if err := shutdownTelemetry(flushCtx); err != nil {
		slog.Error("shutting down telemetry", slog.String("error", err.Error()))
	}
	cancelFlush()
	slog.Info("good bye!!!")
	os.Exit(0)
}

// logOutput tees logs into a rotating file when one is configured.
func logOutput(path string) io.Writer {
	if path == "" {
		return os.Stdout
	}

	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     30,
		Compress:   true,
	})
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
