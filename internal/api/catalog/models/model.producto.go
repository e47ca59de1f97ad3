package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
)

// RangoPrecio es un rango de cantidades con su precio unitario. Los límites
// son inclusivos; Max en 0 significa rango abierto (sin límite superior).
type RangoPrecio struct {
	Min    int     `json:"min" bson:"min"`
	Max    int     `json:"max" bson:"max,omitempty"`
	Precio float64 `json:"precio" bson:"precio"`
}

// Contiene indica si la cantidad cae dentro del rango
func (r RangoPrecio) Contiene(cantidad int) bool {
	if cantidad < r.Min {
		return false
	}
	if r.Max == 0 {
		return true
	}
	return cantidad <= r.Max
}

// TablaPrecios son los precios escalonados del producto, con una tarifa
// para el producto liso y otra para el producto con logo
type TablaPrecios struct {
	SinLogo []RangoPrecio `json:"sinLogo" bson:"sinLogo"`
	ConLogo []RangoPrecio `json:"conLogo" bson:"conLogo"`
}

// Categorías del catálogo
const (
	CategoriaPapel      = "papel"
	CategoriaTela       = "tela"
	CategoriaPlastico   = "plastico"
	CategoriaCajas      = "cajas"
	CategoriaPublicidad = "publicidad"
)

// Especificaciones son los datos técnicos del producto. Qué campos aplican
// depende de la categoría (las bolsas de tela llevan material, las cajas
// dimensiones).
type Especificaciones struct {
	Dimensiones string   `json:"dimensiones" bson:"dimensiones,omitempty"`
	Material    string   `json:"material" bson:"material,omitempty"`
	Peso        string   `json:"peso" bson:"peso,omitempty"`
	Colores     []string `json:"colores" bson:"colores,omitempty"`
}

// Producto es un artículo del catálogo
type Producto struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre           string             `json:"nombre" bson:"nombre"`
	Slug             string             `json:"slug" bson:"slug" index:"unique,sparse"`
	Descripcion      string             `json:"descripcion" bson:"descripcion,omitempty"`
	Categoria        string             `json:"categoria" bson:"categoria,omitempty" index:"single"`
	Especificaciones Especificaciones   `json:"especificaciones" bson:"especificaciones,omitempty"`
	Imagenes         []string           `json:"imagenes" bson:"imagenes,omitempty"`
	Precios          TablaPrecios       `json:"precios" bson:"precios"`
	Stock            int                `json:"stock" bson:"stock"`
	Destacado        bool               `json:"destacado" bson:"destacado"`
	Activo           bool               `json:"activo" bson:"activo" index:"single"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// PrecioPara devuelve el precio unitario para una cantidad, según la tarifa
// con o sin logo. Si la cantidad no cae en ningún rango (por huecos en la
// tabla) se cobra el precio del primer rango.
func (p *Producto) PrecioPara(cantidad int, conLogo bool) (float64, error) {
	if cantidad < 1 {
		return 0, common.NewError(common.ErrCodeValidationInput, "La cantidad debe ser al menos 1", common.StatusBadRequest, nil)
	}

	rangos := p.Precios.SinLogo
	if conLogo {
		rangos = p.Precios.ConLogo
	}
	if len(rangos) == 0 {
		return 0, common.NewError(common.ErrCodeBusinessOperation, "El producto no tiene precios configurados", common.StatusBadRequest, nil)
	}

	for _, rango := range rangos {
		if rango.Contiene(cantidad) {
			return rango.Precio, nil
		}
	}
	return rangos[0].Precio, nil
}
