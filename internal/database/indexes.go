// Package database - Índices compuestos y de campos anidados que no se pueden
// definir con tags en los modelos.
package database

import (
	"context"
	"strings"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateStoreIndexes crea los índices de la tienda (pedidos, productos,
// usuarios). Se invoca una vez durante el arranque.
func CreateStoreIndexes(ctx context.Context, db *mongo.Database) error {
	// pedidos: estado — listados del tablero filtrados por estado
	pedidos := db.Collection(global.MongoDB_ColNames.Pedidos)
	if _, err := pedidos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "estado", Value: 1}},
		Options: options.Index().SetName("pedido_estado"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pedidos: cliente.email — búsqueda de pedidos pendientes por correo
	if _, err := pedidos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cliente.email", Value: 1}},
		Options: options.Index().SetName("pedido_cliente_email"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pedidos: cliente.telefono — búsqueda por teléfono
	if _, err := pedidos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cliente.telefono", Value: 1}},
		Options: options.Index().SetName("pedido_cliente_telefono"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pedidos: (estado, recordatorio.enviado, createdAt) — consulta de
	// recordatorios de carritos abandonados
	if _, err := pedidos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "estado", Value: 1},
			{Key: "recordatorio.enviado", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("pedido_recordatorio"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pedidos: createdAt desc — listados ordenados por fecha
	if _, err := pedidos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("pedido_created_at"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// productos: slug único — la unicidad del slug se garantiza acá
	productos := db.Collection(global.MongoDB_ColNames.Productos)
	if _, err := productos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("producto_slug").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// productos: (categoria, activo) — filtros del catálogo público
	if _, err := productos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "categoria", Value: 1},
			{Key: "activo", Value: 1},
		},
		Options: options.Index().SetName("producto_categoria_activo"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// productos: destacado — productos destacados de la portada
	if _, err := productos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "destacado", Value: 1}},
		Options: options.Index().SetName("producto_destacado").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// usuarios: email único
	usuarios := db.Collection(global.MongoDB_ColNames.Usuarios)
	if _, err := usuarios.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("usuario_email").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// usuarios: tokens.jwtToken sparse — lookup del middleware de autenticación
	if _, err := usuarios.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tokens.jwtToken", Value: 1}},
		Options: options.Index().SetName("usuario_token").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
