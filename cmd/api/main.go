// @title           Action Brief API
// @version         1.0
// @description     This API turns uploaded school and community documents into one-page action briefs and skills receipts, asynchronously.
// @termsOfService  http://swagger.io/terms/

// @contact.name    skillsfirst
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/oauth2"

	"github.com/skillsfirst/briefapi/internal/brief"
	"github.com/skillsfirst/briefapi/internal/brief/summarize"
	"github.com/skillsfirst/briefapi/internal/config"
	"github.com/skillsfirst/briefapi/internal/data/store"
	jobmodel "github.com/skillsfirst/briefapi/internal/domain/jobModel"
	"github.com/skillsfirst/briefapi/internal/handlers"
	"github.com/skillsfirst/briefapi/internal/job"
	"github.com/skillsfirst/briefapi/internal/receipt"
	"github.com/skillsfirst/briefapi/internal/receipt/sheetsSink"
	"github.com/skillsfirst/briefapi/internal/server"
	"github.com/skillsfirst/briefapi/internal/worker"
	"github.com/skillsfirst/briefapi/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and job store
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	if redisJobStore := store.GetRedisJobStore(serviceContext); redisJobStore != nil {
		serviceConfig.JobStore = redisJobStore
	} else {
		logger.Error("Redis job store is offline, falling back to in-memory")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
	}

	var receiptLedger jobmodel.ReceiptStore
	if redisReceiptStore := store.GetRedisReceiptStore(serviceContext); redisReceiptStore != nil {
		receiptLedger = redisReceiptStore
	} else {
		logger.Error("Redis receipt ledger is offline, falling back to in-memory")
		receiptLedger = store.InitInMemoryReceiptStore()
	}
	service := job.InitJobService(serviceConfig)

	//external spreadsheet sink is optional - receipts always land in the local ledger
	var sink receipt.Sink
	spreadsheetID := config.GetEnv("SHEETS_SPREADSHEET_ID", config.SheetsSpreadsheetID)
	sheetsToken := config.GetEnv("SHEETS_ACCESS_TOKEN", "")
	if spreadsheetID != "" && sheetsToken != "" {
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: sheetsToken})
		sheetsService, err := sheetsSink.NewSink(serviceContext, tokenSource, spreadsheetID)
		if err != nil {
			logger.Error("Could not initialize the spreadsheet sink", "err", err)
		} else {
			sink = sheetsService
		}
	}

	briefService := brief.NewService(summarize.New(config.SummaryStrategy), receiptLedger, sink)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, briefService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
