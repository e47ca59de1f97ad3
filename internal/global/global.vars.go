package global

import (
	"github.com/Ersonet/alfabolsas-ecommerce/config"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoreCollectionNames contiene los nombres de las colecciones de la tienda
type StoreCollectionNames struct {
	Usuarios  string // Colección de usuarios del back-office
	Productos string // Colección de productos del catálogo
	Pedidos   string // Colección de pedidos (ambos sabores: invitado y carrito)
}

// Variables globales
var Validate *validator.Validate                  // Validador de datos
var MongoDB_Session *mongo.Client                 // Sesión de conexión a MongoDB
var MongoDB_ServerConfig *config.Configuration    // Configuración del servidor
var MongoDB_ColNames = *new(StoreCollectionNames) // Nombres de las colecciones

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry de colecciones
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry de bases de datos
