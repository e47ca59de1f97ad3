// Package orderssvc - lógica de negocio de pedidos: creación con precios
// resueltos en el server, máquina de estados con historial, carritos
// persistidos y recordatorios.
package orderssvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/base/service"
	catalogsvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/catalog/service"
	ordersdto "github.com/Ersonet/alfabolsas-ecommerce/internal/api/orders/dto"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/orders/models"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/utility"
)

// PedidoService maneja la lógica de pedidos y carritos
type PedidoService struct {
	*basesvc.BaseServiceMongoImpl[models.Pedido]
	productoService *catalogsvc.ProductoService
}

// NewPedidoService crea una instancia de PedidoService
func NewPedidoService() (*PedidoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Pedidos)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de pedidos: %v", common.ErrNotFound)
	}

	productoService, err := catalogsvc.NewProductoService()
	if err != nil {
		return nil, err
	}

	return &PedidoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Pedido](collection),
		productoService:      productoService,
	}, nil
}

// construirLineas resuelve cada renglón contra el catálogo: congela el
// nombre y calcula el precio unitario con la tabla escalonada del producto.
// El precio nunca viene del cliente.
func (s *PedidoService) construirLineas(ctx context.Context, entradas []ordersdto.LineaInput) ([]models.LineaPedido, error) {
	lineas := make([]models.LineaPedido, 0, len(entradas))
	for _, entrada := range entradas {
		if entrada.Cantidad < 1 {
			return nil, common.NewError(common.ErrCodeValidationInput, "La cantidad debe ser al menos 1", common.StatusBadRequest, nil)
		}

		productoID, err := primitive.ObjectIDFromHex(entrada.ProductoID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "ID de producto inválido: "+entrada.ProductoID, common.StatusBadRequest, err)
		}

		producto, err := s.productoService.FindOneById(ctx, productoID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, "No existe el producto "+entrada.ProductoID, common.StatusBadRequest, err)
		}
		if !producto.Activo {
			return nil, common.ErrProductUnavailable
		}

		precioUnitario, err := producto.PrecioPara(entrada.Cantidad, entrada.ConLogo)
		if err != nil {
			return nil, err
		}

		lineas = append(lineas, models.LineaPedido{
			ProductoID:     producto.ID,
			NombreProducto: producto.Nombre,
			Cantidad:       entrada.Cantidad,
			ConLogo:        entrada.ConLogo,
			PrecioUnitario: precioUnitario,
		})
	}
	return lineas, nil
}

// crear arma y persiste un pedido en su estado inicial con la primera
// entrada del historial
func (s *PedidoService) crear(ctx context.Context, cliente models.Cliente, entradas []ordersdto.LineaInput, estadoInicial string, esCarrito bool, origen string, ip string) (*models.Pedido, error) {
	lineas, err := s.construirLineas(ctx, entradas)
	if err != nil {
		return nil, err
	}

	if origen == "" {
		origen = models.OrigenWeb
	}

	pedido := models.Pedido{
		Cliente: cliente,
		Lineas:  lineas,
		Estado:  estadoInicial,
		HistorialEstados: []models.CambioEstado{
			{Estado: estadoInicial, Fecha: utility.CurrentTimeInMilli()},
		},
		EsCarrito: esCarrito,
		Origen:    origen,
		IPCliente: ip,
	}
	pedido.RecalcularTotales()

	creado, err := s.InsertOne(ctx, pedido)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"pedido_id": creado.ID.Hex(),
		"estado":    creado.Estado,
		"origen":    creado.Origen,
		"total":     creado.Total,
	}).Info("Pedido creado")

	return &creado, nil
}

// CrearPedido crea un pedido de invitado en estado pendiente
func (s *PedidoService) CrearPedido(ctx context.Context, input *ordersdto.PedidoCreateInput, ip string) (*models.Pedido, error) {
	cliente := models.Cliente{
		UsuarioID:    utility.String2ObjectID(input.Cliente.UsuarioID),
		Nombre:       input.Cliente.Nombre,
		Email:        strings.ToLower(input.Cliente.Email),
		Telefono:     input.Cliente.Telefono,
		Ciudad:       input.Cliente.Ciudad,
		Direccion:    input.Cliente.Direccion,
		CodigoPostal: input.Cliente.CodigoPostal,
		Departamento: input.Cliente.Departamento,
	}
	return s.crear(ctx, cliente, input.Lineas, models.EstadoPendiente, false, input.Origen, ip)
}

// GuardarCarrito persiste un carrito en estado carrito_guardado. El email
// es obligatorio para poder hacer el seguimiento del carrito abandonado.
func (s *PedidoService) GuardarCarrito(ctx context.Context, input *ordersdto.CarritoGuardarInput, ip string) (*models.Pedido, error) {
	if input.Cliente.Email == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "El email es obligatorio para guardar el carrito", common.StatusBadRequest, nil)
	}
	cliente := models.Cliente{
		UsuarioID:    utility.String2ObjectID(input.Cliente.UsuarioID),
		Nombre:       input.Cliente.Nombre,
		Email:        strings.ToLower(input.Cliente.Email),
		Telefono:     input.Cliente.Telefono,
		Ciudad:       input.Cliente.Ciudad,
		Direccion:    input.Cliente.Direccion,
		CodigoPostal: input.Cliente.CodigoPostal,
		Departamento: input.Cliente.Departamento,
	}
	return s.crear(ctx, cliente, input.Lineas, models.EstadoCarritoGuardado, true, input.Origen, ip)
}

// CambiarEstado mueve el pedido a otro estado y agrega la entrada al
// historial con $push (el historial nunca se reescribe). En modo permisivo
// el back-office puede saltar a cualquier estado válido; con
// ESTADOS_ESTRICTOS activo la transición se valida contra la tabla.
func (s *PedidoService) CambiarEstado(ctx context.Context, id primitive.ObjectID, input *ordersdto.CambiarEstadoInput, actorID primitive.ObjectID) (*models.Pedido, string, error) {
	if !models.EstadoValido(input.Estado) {
		return nil, "", common.NewError(common.ErrCodeBusinessState, "Estado desconocido: "+input.Estado, common.StatusBadRequest, nil)
	}

	actual, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.StrictTransitions {
		if !models.TransicionPermitida(actual.Estado, input.Estado) {
			return nil, "", common.NewError(
				common.ErrCodeBusinessState,
				fmt.Sprintf("Transición no permitida: %s → %s", actual.Estado, input.Estado),
				common.StatusBadRequest,
				nil,
			)
		}
	}

	cambio := models.CambioEstado{
		Estado:      input.Estado,
		Observacion: input.Observacion,
		ActorID:     actorID,
		Fecha:       utility.CurrentTimeInMilli(),
	}

	set := map[string]interface{}{"estado": input.Estado}
	// Al marcar contactado queda registrada la asesora que atendió el pedido
	if input.Estado == models.EstadoContactado && !actorID.IsZero() && actual.AtendidoPor.IsZero() {
		set["atendidoPor"] = actorID
	}

	actualizado, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set:  set,
		Push: map[string]interface{}{"historialEstados": cambio},
	})
	if err != nil {
		return nil, "", err
	}

	return &actualizado, actual.Estado, nil
}

// Listar devuelve los pedidos del back-office, opcionalmente filtrados por
// estado, del más reciente al más viejo. Si limite no es positivo se usan 50.
func (s *PedidoService) Listar(ctx context.Context, estado string, limite int64) ([]models.Pedido, error) {
	if limite <= 0 {
		limite = 50
	}

	filter := bson.M{}
	if estado != "" {
		if !models.EstadoValido(estado) {
			return nil, common.NewError(common.ErrCodeBusinessState, "Estado desconocido: "+estado, common.StatusBadRequest, nil)
		}
		filter["estado"] = estado
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limite)
	return s.Find(ctx, filter, opts)
}

// RegistrarPago anota el método de pago del pedido. No hay pasarela: el
// comprobante es la URL del archivo que subió la asesora.
func (s *PedidoService) RegistrarPago(ctx context.Context, id primitive.ObjectID, input *ordersdto.RegistrarPagoInput) (*models.Pedido, error) {
	actualizado, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"metodoPago": models.MetodoPago{
				Tipo:        input.Tipo,
				Comprobante: input.Comprobante,
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// RegistrarEnvio guarda los datos del despacho con la fecha de envío actual
func (s *PedidoService) RegistrarEnvio(ctx context.Context, id primitive.ObjectID, input *ordersdto.RegistrarEnvioInput) (*models.Pedido, error) {
	actualizado, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"envio": models.InfoEnvio{
				Empresa:              input.Empresa,
				NumeroGuia:           input.NumeroGuia,
				FechaEnvio:           utility.CurrentTimeInMilli(),
				FechaEntregaEstimada: input.FechaEntregaEstimada,
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// ActualizarMontos ajusta los cargos del pedido y recalcula los totales
func (s *PedidoService) ActualizarMontos(ctx context.Context, id primitive.ObjectID, input *ordersdto.ActualizarMontosInput) (*models.Pedido, error) {
	pedido, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	pedido.CostoEnvio = input.CostoEnvio
	pedido.Impuestos = input.Impuestos
	pedido.Descuento = input.Descuento
	pedido.RecalcularTotales()

	actualizado, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"costoEnvio": pedido.CostoEnvio,
			"impuestos":  pedido.Impuestos,
			"descuento":  pedido.Descuento,
			"subtotal":   pedido.Subtotal,
			"total":      pedido.Total,
		},
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// filtroPendientesPorEmail arma el filtro de carritos pendientes de pago de
// un email: estado carrito_guardado o pago_pendiente
func filtroPendientesPorEmail(email string) bson.M {
	return bson.M{
		"cliente.email": strings.ToLower(email),
		"estado":        bson.M{"$in": bson.A{models.EstadoCarritoGuardado, models.EstadoPagoPendiente}},
	}
}

// PendientesPorEmail devuelve los carritos pendientes de pago de un email,
// del más reciente al más viejo
func (s *PedidoService) PendientesPorEmail(ctx context.Context, email string) ([]models.Pedido, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, filtroPendientesPorEmail(email), opts)
}

// filtroRecordatorios arma el filtro de carritos abandonados: estado de
// carrito sin recordatorio enviado y creado antes del corte de la ventana.
// Con windowHours fuera de rango se usan 24 horas.
func filtroRecordatorios(windowHours int, ahora time.Time) bson.M {
	if windowHours <= 0 {
		windowHours = 24
	}
	limite := utility.UnixMilli(ahora.Add(-time.Duration(windowHours) * time.Hour))

	return bson.M{
		"estado":               bson.M{"$in": bson.A{models.EstadoCarritoGuardado, models.EstadoPagoPendiente}},
		"recordatorio.enviado": false,
		"createdAt":            bson.M{"$lt": limite},
	}
}

// RecordatoriosPendientes devuelve los carritos abandonados que todavía no
// recibieron recordatorio: estado carrito_guardado o pago_pendiente, sin
// recordatorio enviado y con más de windowHours de antigüedad
func (s *PedidoService) RecordatoriosPendientes(ctx context.Context, windowHours int) ([]models.Pedido, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, filtroRecordatorios(windowHours, time.Now()), opts)
}

// MarcarRecordatorioEnviado registra el envío del recordatorio: marca
// enviado, incrementa el contador y guarda el momento del envío
func (s *PedidoService) MarcarRecordatorioEnviado(ctx context.Context, id primitive.ObjectID) (*models.Pedido, error) {
	now := utility.CurrentTimeInMilli()
	result, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{
				"recordatorio.enviado":     true,
				"recordatorio.ultimoEnvio": now,
				"updatedAt":                now,
			},
			"$inc": bson.M{"recordatorio.contador": 1},
		},
	)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return nil, common.ErrNotFound
	}

	pedido, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &pedido, nil
}

// AgregarNota agrega una anotación interna al pedido
func (s *PedidoService) AgregarNota(ctx context.Context, id primitive.ObjectID, input *ordersdto.NotaInput, autorID primitive.ObjectID) (*models.Pedido, error) {
	nota := models.Nota{
		ID:        primitive.NewObjectID(),
		Texto:     input.Texto,
		AutorID:   autorID,
		CreatedAt: utility.CurrentTimeInMilli(),
	}

	actualizado, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Push: map[string]interface{}{"notas": nota},
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// EliminarNota saca una anotación del pedido
func (s *PedidoService) EliminarNota(ctx context.Context, id primitive.ObjectID, notaID primitive.ObjectID) (*models.Pedido, error) {
	result, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{"notas": bson.M{"id": notaID}},
			"$set":  bson.M{"updatedAt": utility.CurrentTimeInMilli()},
		},
	)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return nil, common.ErrNotFound
	}

	pedido, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	return &pedido, nil
}

// Stats arma el resumen del tablero: cantidad de pedidos por estado, el
// monto total de lo vendido (pedidos pagados en adelante) y los números del
// día (pedidos creados hoy y ventas de hoy sin los cancelados)
func (s *PedidoService) Stats(ctx context.Context) (*ordersdto.PedidoStats, error) {
	cursor, err := s.Collection().Aggregate(ctx, bson.A{
		bson.M{"$group": bson.M{
			"_id":   "$estado",
			"count": bson.M{"$sum": 1},
			"monto": bson.M{"$sum": "$total"},
		}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var grupos []struct {
		Estado string  `bson:"_id"`
		Count  int64   `bson:"count"`
		Monto  float64 `bson:"monto"`
	}
	if err := cursor.All(ctx, &grupos); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	vendidos := map[string]bool{
		models.EstadoPagado:         true,
		models.EstadoEnProduccion:   true,
		models.EstadoEnviado:        true,
		models.EstadoEntregado:      true,
		models.EstadoPagoCompletado: true,
		models.EstadoPreparando:     true,
	}

	stats := &ordersdto.PedidoStats{PorEstado: make(map[string]int64)}
	for _, grupo := range grupos {
		stats.Total += grupo.Count
		stats.PorEstado[grupo.Estado] = grupo.Count
		if vendidos[grupo.Estado] {
			stats.MontoVendido += grupo.Monto
		}
	}
	stats.MontoVendido = utility.Round2(stats.MontoVendido)

	ahora := time.Now()
	inicioHoy := utility.UnixMilli(time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location()))

	pedidosHoy, err := s.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": inicioHoy}})
	if err != nil {
		return nil, err
	}
	stats.PedidosHoy = pedidosHoy

	cursorHoy, err := s.Collection().Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{
			"createdAt": bson.M{"$gte": inicioHoy},
			"estado":    bson.M{"$nin": bson.A{models.EstadoCancelado}},
		}},
		bson.M{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total"},
		}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursorHoy.Close(ctx)

	var ventasHoy []struct {
		Total float64 `bson:"total"`
	}
	if err := cursorHoy.All(ctx, &ventasHoy); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(ventasHoy) > 0 {
		stats.VentasHoy = utility.Round2(ventasHoy[0].Total)
	}

	return stats, nil
}
