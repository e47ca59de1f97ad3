package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Ersonet/alfabolsas-ecommerce/config"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/database"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
)

// InitGlobal inicializa las variables globales de la aplicación
func InitGlobal() {
	initColNames()         // Nombres de las colecciones
	initValidator()        // Validador con reglas custom
	initConfig()           // Configuración del servidor
	initDatabase_MongoDB() // Conexión a la base de datos
}

// initColNames define los nombres de las colecciones de la tienda
func initColNames() {
	global.MongoDB_ColNames.Usuarios = "usuarios"
	global.MongoDB_ColNames.Productos = "productos"
	global.MongoDB_ColNames.Pedidos = "pedidos"

	logrus.Info("Nombres de colecciones inicializados")
}

// initValidator registra los validadores custom (no_xss, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Validador inicializado")
}

// initConfig carga la configuración desde el archivo env del entorno
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("No se pudo inicializar la configuración")
	}
	logrus.Info("Configuración del servidor inicializada")
}

// initDatabase_MongoDB abre la conexión a MongoDB y crea los índices
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("No se pudo conectar a MongoDB: %v", err)
	}
	logrus.Info("Conectado a MongoDB")

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateStoreIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("No se pudieron crear los índices: %v", err)
	}
	logrus.Info("Índices de la tienda creados")
}
