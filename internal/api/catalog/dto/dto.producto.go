package catalogdto

import "github.com/Ersonet/alfabolsas-ecommerce/internal/api/catalog/models"

// EspecificacionesInput son los datos técnicos del producto
type EspecificacionesInput struct {
	Dimensiones string   `json:"dimensiones" validate:"omitempty,max=200,no_xss"`
	Material    string   `json:"material" validate:"omitempty,max=200,no_xss"`
	Peso        string   `json:"peso" validate:"omitempty,max=100,no_xss"`
	Colores     []string `json:"colores" validate:"omitempty,dive,max=50"`
}

// ProductoCreateInput es la entrada para crear un producto. El slug se
// genera en el servicio a partir del nombre.
type ProductoCreateInput struct {
	Nombre           string                `json:"nombre" validate:"required,min=2,max=200,no_xss"`
	Descripcion      string                `json:"descripcion" validate:"omitempty,max=5000,no_xss"`
	Categoria        string                `json:"categoria" validate:"required,oneof=papel tela plastico cajas publicidad"`
	Especificaciones EspecificacionesInput `json:"especificaciones"`
	Imagenes         []string              `json:"imagenes" validate:"omitempty,dive,max=500"`
	Precios          models.TablaPrecios   `json:"precios"`
	Stock            int                   `json:"stock" validate:"min=0"`
	Destacado        bool                  `json:"destacado"`
}

// ProductoUpdateInput es la entrada para actualizar un producto. Solo los
// campos presentes se modifican; si cambia el nombre el servicio regenera
// el slug.
type ProductoUpdateInput struct {
	Nombre           string                 `json:"nombre" validate:"omitempty,min=2,max=200,no_xss"`
	Descripcion      string                 `json:"descripcion" validate:"omitempty,max=5000,no_xss"`
	Categoria        string                 `json:"categoria" validate:"omitempty,oneof=papel tela plastico cajas publicidad"`
	Especificaciones *EspecificacionesInput `json:"especificaciones" validate:"omitempty"`
	Imagenes         []string               `json:"imagenes" validate:"omitempty,dive,max=500"`
	Precios          models.TablaPrecios    `json:"precios"`
	Stock            *int                   `json:"stock" validate:"omitempty,min=0"`
	Destacado        bool                   `json:"destacado"`
}

// CotizarInput es la entrada para cotizar una cantidad de un producto
type CotizarInput struct {
	Cantidad int  `json:"cantidad" validate:"required,min=1"`
	ConLogo  bool `json:"conLogo"`
}

// CotizacionResult es el resultado de una cotización
type CotizacionResult struct {
	ProductoID     string  `json:"productoId"`
	Cantidad       int     `json:"cantidad"`
	ConLogo        bool    `json:"conLogo"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Subtotal       float64 `json:"subtotal"`
}
