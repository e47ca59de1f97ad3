package orderssvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/api/orders/models"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/utility"
)

// Un carrito de 25 horas entra en la ventana de 24; uno de 1 hora queda
// afuera
func TestFiltroRecordatorios_CorteDeVentana(t *testing.T) {
	ahora := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	filtro := filtroRecordatorios(24, ahora)

	corte, ok := filtro["createdAt"].(bson.M)["$lt"].(int64)
	require.True(t, ok)
	assert.Equal(t, utility.UnixMilli(ahora.Add(-24*time.Hour)), corte)

	creadoHace25h := utility.UnixMilli(ahora.Add(-25 * time.Hour))
	creadoHace1h := utility.UnixMilli(ahora.Add(-1 * time.Hour))
	assert.Less(t, creadoHace25h, corte)
	assert.GreaterOrEqual(t, creadoHace1h, corte)
}

func TestFiltroRecordatorios_SoloCarritosSinRecordatorio(t *testing.T) {
	filtro := filtroRecordatorios(24, time.Now())

	estados := filtro["estado"].(bson.M)["$in"].(bson.A)
	assert.ElementsMatch(t, bson.A{models.EstadoCarritoGuardado, models.EstadoPagoPendiente}, estados)
	assert.Equal(t, false, filtro["recordatorio.enviado"])
}

// Con una ventana fuera de rango se usan las 24 horas por defecto
func TestFiltroRecordatorios_VentanaPorDefecto(t *testing.T) {
	ahora := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	conCero := filtroRecordatorios(0, ahora)["createdAt"].(bson.M)["$lt"]
	conVeinticuatro := filtroRecordatorios(24, ahora)["createdAt"].(bson.M)["$lt"]
	assert.Equal(t, conVeinticuatro, conCero)
}

func TestFiltroPendientesPorEmail(t *testing.T) {
	filtro := filtroPendientesPorEmail("Maria@Example.com")

	assert.Equal(t, "maria@example.com", filtro["cliente.email"])

	estados := filtro["estado"].(bson.M)["$in"].(bson.A)
	assert.ElementsMatch(t, bson.A{models.EstadoCarritoGuardado, models.EstadoPagoPendiente}, estados)
	assert.NotContains(t, estados, models.EstadoPendiente)
}
