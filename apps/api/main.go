package main

import (
	"log"
	"os"

	"github.com/trezcool/ratiba/apps/api/echo"
	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/schedule"
	"github.com/trezcool/ratiba/services/logger"
	"github.com/trezcool/ratiba/storage/database"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug && !conf.TestMode)

	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		logger.Fatal("creating database", err)
	}
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrating database", err)
	}

	// set up services
	evtSvc := schedule.NewService(database.NewEventRepository(db))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Conf:           conf,
			DisableReqLogs: conf.Server.DisableReqLogs,
			EventSvc:       evtSvc,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
