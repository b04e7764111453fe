package main

import (
	"flag"
	"path/filepath"
	"strconv"

	"github.com/vskvj3/linkedlists/internal/core"
	"github.com/vskvj3/linkedlists/internal/network"
	"github.com/vskvj3/linkedlists/internal/persistence"
	"github.com/vskvj3/linkedlists/internal/utils"
)

func main() {
	// Parse command-line arguments
	configPtr := flag.String("config", filepath.Join(utils.DefaultDataDir(), "linkedlists.yaml"), "Path of the configuration file")
	portPtr := flag.String("port", "", "Port of server")
	flag.Parse()

	// Load configurations
	config, err := utils.LoadConfig(*configPtr)
	if err != nil {
		utils.GetLogger().Error("Error loading configuration: " + err.Error())
		return
	}

	logger := utils.NewLogger(config.LogFile, config.Debug)
	logger.Info("Loaded configurations from " + *configPtr)

	// Determine Port
	port := strconv.Itoa(config.Port)
	if *portPtr != "" {
		if _, err := strconv.Atoi(*portPtr); err != nil {
			logger.Error("Port must be an integer: " + err.Error())
			return
		}
		port = *portPtr
	}
	logger.Info("Port assigned: " + port)

	var disk *persistence.Persistence
	if config.Persistence == utils.PersistenceWriteThrough {
		disk, err = persistence.NewPersistence(config.PersistencePath())
		if err != nil {
			logger.Error("Could not access disk: " + err.Error())
			return
		}
		defer disk.Close()
		logger.Info("Write-through persistence at " + config.PersistencePath())
	}

	db := core.NewDatabase(config.MaxLists)
	handler := core.NewCommandHandler(db, disk)

	// Create the network server
	server, err := network.NewServer(port, handler)
	if err != nil {
		logger.Error("Server creation failed: " + err.Error())
		return
	}
	if err := server.Start(); err != nil {
		logger.Error("Server stopped: " + err.Error())
	}
}
