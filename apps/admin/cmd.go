package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/ratiba/core/schedule"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db     *sqlx.DB
	evtSvc *schedule.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate - run DB migrations")
	fmt.Println("  seedevents -teacher TEACHER_ID [-weeks N] - seed N weeks (default 1) of demo schedule events")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedEventsCmd := flag.NewFlagSet("seedevents", flag.ExitOnError)
	seedEventsTeacher := seedEventsCmd.String("teacher", "", "The teacher the demo events belong to.")
	seedEventsWeeks := seedEventsCmd.Int("weeks", 1, "How many weeks of events to seed.")

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "seedevents":
		if err := seedEventsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedEventsTeacher == "" {
			seedEventsCmd.Usage()
			return errHelp
		}
		if *seedEventsWeeks < 1 {
			seedEventsCmd.Usage()
			return errHelp
		}
		return cli.seedEvents(*seedEventsTeacher, *seedEventsWeeks)
	default:
		cli.printUsage()
		return errHelp
	}
}
