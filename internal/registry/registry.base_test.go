package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterYGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("contador", 42)
	require.NoError(t, err)
	assert.True(t, isNew)

	valor, exists := r.Get("contador")
	assert.True(t, exists)
	assert.Equal(t, 42, valor)

	_, exists = r.Get("inexistente")
	assert.False(t, exists)
}

func TestRegistry_RegisterSobrescribe(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("col", "v1")
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("col", "v2")
	require.NoError(t, err)
	assert.False(t, isNew)

	valor, _ := r.Get("col")
	assert.Equal(t, "v2", valor)
}

func TestRegistry_NombreVacio(t *testing.T) {
	r := NewRegistry[int]()

	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()

	llamadas := 0
	creator := func() (int, error) {
		llamadas++
		return 7, nil
	}

	valor, err := r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, 7, valor)

	// La segunda llamada no vuelve a crear
	valor, err = r.GetOrCreate("x", creator)
	require.NoError(t, err)
	assert.Equal(t, 7, valor)
	assert.Equal(t, 1, llamadas)
}

func TestRegistry_AccesoConcurrente(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("compartido", n)
			r.Get("compartido")
		}(i)
	}
	wg.Wait()

	_, exists := r.Get("compartido")
	assert.True(t, exists)
}
