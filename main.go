package main

import (
	"log"

	"mojopi/confs"
	"mojopi/db"
	"mojopi/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	registryServer := server.NewServer(database)
	registryServer.Start()
}
