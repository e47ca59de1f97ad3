package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ersonet/alfabolsas-ecommerce/config"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
)

// InitRegistry registra las colecciones de la tienda en el registry global
func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("No se pudieron registrar las colecciones: %v", err)
	}
	logrus.Info("Registry de colecciones inicializado")
}

// InitCollections registra cada colección de la tienda en el registry
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	colNames := []string{
		global.MongoDB_ColNames.Usuarios,
		global.MongoDB_ColNames.Productos,
		global.MongoDB_ColNames.Pedidos,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("No se pudo registrar la colección %s: %v", name, err)
			return err
		}
		if registered {
			logrus.Infof("Colección %s registrada", name)
		}
	}

	return nil
}
