package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Ersonet/alfabolsas-ecommerce/config"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInstance inicializa y devuelve el cliente de MongoDB usando la URI de la
// configuración. Devuelve error si la conexión o el ping fallan.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("la URI de conexión a la base de datos está vacía")
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(50).                 // Máximo 50 conexiones
		SetMinPoolSize(10).                 // Mínimo 10 conexiones en el pool
		SetConnectTimeout(5 * time.Second). // Timeout de conexión
		SetSocketTimeout(10 * time.Second)  // Timeout de lectura/escritura

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a MongoDB: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	err = client.Ping(ctxPing, nil)
	if err != nil {
		return nil, fmt.Errorf("no se pudo hacer ping a MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Conexión a MongoDB establecida")
	return client, nil
}

// CloseInstance cierra la conexión del cliente de MongoDB
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("No se pudo desconectar el cliente de MongoDB")
		return err
	}
	logger.GetAppLogger().Info("Cliente de MongoDB desconectado")
	return nil
}
