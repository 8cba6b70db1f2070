package main

import (
	"github.com/tanavishali52/BE-saleman/config"
	"github.com/tanavishali52/BE-saleman/internal/global"
	"github.com/tanavishali52/BE-saleman/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	log := logger.GetAppLogger()

	// Khởi tạo registry và đăng ký các collections
	if err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig); err != nil {
		log.Fatalf("Failed to initialize collections: %v", err)
	}
	log.WithField("collections", global.RegistryCollections.Names()).Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	log := logger.GetAppLogger()
	db := client.Database(cfg.MongoDB_DBName)

	for _, name := range global.MongoDB_ColNames.All() {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			log.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			log.Infof("Collection %s registered successfully", name)
		} else {
			log.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
