package main

import "github.com/trezcool/ratiba/storage/database"

func (cli *commandLine) migrate() error {
	logger.Println("running migrations...")
	if err := database.Migrate(cli.db); err != nil {
		return err
	}
	logger.Println("done")
	return nil
}
