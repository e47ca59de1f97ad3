package catalogsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/service"
	catalogdto "github.com/Ersonet/alfabolsas-ecommerce/internal/api/catalog/dto"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/catalog/models"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/utility"
)

// ProductoService maneja la lógica del catálogo de productos
type ProductoService struct {
	*basesvc.BaseServiceMongoImpl[models.Producto]
}

// NewProductoService crea una instancia de ProductoService
func NewProductoService() (*ProductoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Productos)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de productos: %v", common.ErrNotFound)
	}

	return &ProductoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Producto](collection),
	}, nil
}

// rangosPorDefecto arma la tabla de precios escalonada por defecto cuando el
// producto se crea sin precios: cuatro rangos, el último abierto.
func rangosPorDefecto() []models.RangoPrecio {
	return []models.RangoPrecio{
		{Min: 20, Max: 99, Precio: 0},
		{Min: 100, Max: 299, Precio: 0},
		{Min: 300, Max: 500, Precio: 0},
		{Min: 501, Max: 0, Precio: 0},
	}
}

// Crear da de alta un producto con su slug generado a partir del nombre
func (s *ProductoService) Crear(ctx context.Context, input *catalogdto.ProductoCreateInput) (*models.Producto, error) {
	slug, err := s.generarSlugUnico(ctx, input.Nombre, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	precios := input.Precios
	if len(precios.SinLogo) == 0 {
		precios.SinLogo = rangosPorDefecto()
	}
	if len(precios.ConLogo) == 0 {
		precios.ConLogo = rangosPorDefecto()
	}

	producto := models.Producto{
		Nombre:      input.Nombre,
		Slug:        slug,
		Descripcion: input.Descripcion,
		Categoria:   input.Categoria,
		Especificaciones: models.Especificaciones{
			Dimensiones: input.Especificaciones.Dimensiones,
			Material:    input.Especificaciones.Material,
			Peso:        input.Especificaciones.Peso,
			Colores:     input.Especificaciones.Colores,
		},
		Imagenes:  input.Imagenes,
		Precios:   precios,
		Stock:     input.Stock,
		Destacado: input.Destacado,
		Activo:    true,
	}

	creado, err := s.InsertOne(ctx, producto)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"producto_id": creado.ID.Hex(),
		"slug":        creado.Slug,
	}).Info("Producto creado")

	return &creado, nil
}

// Actualizar modifica un producto; si cambia el nombre regenera el slug
func (s *ProductoService) Actualizar(ctx context.Context, id primitive.ObjectID, input *catalogdto.ProductoUpdateInput) (*models.Producto, error) {
	actual, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{}}

	if input.Nombre != "" && input.Nombre != actual.Nombre {
		slug, err := s.generarSlugUnico(ctx, input.Nombre, id)
		if err != nil {
			return nil, err
		}
		updateData.Set["nombre"] = input.Nombre
		updateData.Set["slug"] = slug
	}
	if input.Descripcion != "" {
		updateData.Set["descripcion"] = input.Descripcion
	}
	if input.Categoria != "" {
		updateData.Set["categoria"] = input.Categoria
	}
	if input.Especificaciones != nil {
		updateData.Set["especificaciones"] = models.Especificaciones{
			Dimensiones: input.Especificaciones.Dimensiones,
			Material:    input.Especificaciones.Material,
			Peso:        input.Especificaciones.Peso,
			Colores:     input.Especificaciones.Colores,
		}
	}
	if input.Stock != nil {
		updateData.Set["stock"] = *input.Stock
	}
	if len(input.Imagenes) > 0 {
		updateData.Set["imagenes"] = input.Imagenes
	}
	if len(input.Precios.SinLogo) > 0 || len(input.Precios.ConLogo) > 0 {
		updateData.Set["precios"] = input.Precios
	}
	updateData.Set["destacado"] = input.Destacado

	actualizado, err := s.UpdateById(ctx, id, updateData)
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// BuscarPorSlug devuelve un producto activo por su slug
func (s *ProductoService) BuscarPorSlug(ctx context.Context, slug string) (*models.Producto, error) {
	producto, err := s.FindOne(ctx, bson.M{"slug": slug, "activo": true}, nil)
	if err != nil {
		return nil, err
	}
	return &producto, nil
}

// ListarActivos devuelve el catálogo público, opcionalmente filtrado por
// categoría y destacados, ordenado por fecha de creación descendente
func (s *ProductoService) ListarActivos(ctx context.Context, categoria string, soloDestacados bool) ([]models.Producto, error) {
	filter := bson.M{"activo": true}
	if categoria != "" {
		filter["categoria"] = categoria
	}
	if soloDestacados {
		filter["destacado"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// Cotizar calcula el precio unitario y el subtotal para una cantidad
func (s *ProductoService) Cotizar(ctx context.Context, id primitive.ObjectID, input *catalogdto.CotizarInput) (*catalogdto.CotizacionResult, error) {
	producto, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if !producto.Activo {
		return nil, common.ErrProductUnavailable
	}

	precioUnitario, err := producto.PrecioPara(input.Cantidad, input.ConLogo)
	if err != nil {
		return nil, err
	}

	return &catalogdto.CotizacionResult{
		ProductoID:     producto.ID.Hex(),
		Cantidad:       input.Cantidad,
		ConLogo:        input.ConLogo,
		PrecioUnitario: precioUnitario,
		Subtotal:       utility.Round2(precioUnitario * float64(input.Cantidad)),
	}, nil
}

// Desactivar saca el producto del catálogo sin borrarlo (baja lógica)
func (s *ProductoService) Desactivar(ctx context.Context, id primitive.ObjectID) (*models.Producto, error) {
	producto, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"activo": false},
	})
	if err != nil {
		return nil, err
	}
	return &producto, nil
}

// Reactivar vuelve a publicar un producto dado de baja
func (s *ProductoService) Reactivar(ctx context.Context, id primitive.ObjectID) (*models.Producto, error) {
	producto, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"activo": true},
	})
	if err != nil {
		return nil, err
	}
	return &producto, nil
}

// Categorias devuelve las categorías distintas de los productos activos
func (s *ProductoService) Categorias(ctx context.Context) ([]interface{}, error) {
	return s.Distinct(ctx, "categoria", bson.M{"activo": true})
}

// generarSlugUnico genera el slug del nombre y le agrega un sufijo numérico
// si ya existe en otro producto
func (s *ProductoService) generarSlugUnico(ctx context.Context, nombre string, excluirID primitive.ObjectID) (string, error) {
	base := utility.Slugify(nombre)
	if base == "" {
		return "", common.NewError(common.ErrCodeValidationInput, "El nombre no genera un slug válido", common.StatusBadRequest, nil)
	}

	slug := base
	for i := 2; ; i++ {
		filter := bson.M{"slug": slug}
		if !excluirID.IsZero() {
			filter["_id"] = bson.M{"$ne": excluirID}
		}
		exists, err := s.DocumentExists(ctx, filter)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
