// Package registry provee una implementación genérica y thread-safe del
// patrón registry, usada para administrar instancias singleton (colecciones,
// bases de datos) dentro de la aplicación.
package registry

import (
	"fmt"
	"sync"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/common"
)

// Registry es un registro genérico protegido por sync.RWMutex.
// El parámetro de tipo T permite reutilizarlo para cualquier clase de objeto.
//
// Example:
//
//	// Crear un registry de strings
//	strRegistry := NewRegistry[string]()
//
//	// Registrar un elemento
//	strRegistry.Register("clave", "valor")
//
//	// Obtener un elemento
//	if value, exists := strRegistry.Get("clave"); exists {
//	    fmt.Println(value)
//	}
type Registry[T any] struct {
	items map[string]T // Elementos indexados por clave
	mu    sync.RWMutex // Mutex para acceso concurrente
}

// NewRegistry crea y devuelve un registry nuevo.
//
// Example:
//
//	registry := NewRegistry[int]()
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register registra un elemento nuevo. Si ya existe uno con el mismo nombre,
// se sobrescribe.
//
// Returns:
//   - isNew: true si el elemento es nuevo, false si sobrescribió uno anterior
//   - err: error si el nombre está vacío
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("el nombre no puede estar vacío: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get devuelve el elemento registrado con ese nombre y un booleano que indica
// si existe.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}

// GetOrCreate devuelve el elemento con ese nombre; si no existe lo crea con la
// función creator y lo registra.
//
// Example:
//
//	item, err := registry.GetOrCreate("contador", func() (int, error) {
//	    return 0, nil
//	})
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("el nombre no puede estar vacío: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingItem, exists := r.items[name]; exists {
		return existingItem, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("no se pudo crear el elemento: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update actualiza un elemento de forma thread-safe aplicando la función
// updater sobre el valor actual.
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("elemento no encontrado: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("no se pudo actualizar el elemento: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Clear elimina un elemento del registry. Si se provee una función cleanup se
// invoca antes de eliminar, para liberar recursos.
//
// Returns:
//   - deleted: true si se eliminó, false si no existía
//   - err: error del cleanup si lo hubo
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("el nombre no puede estar vacío: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("falló el cleanup del elemento %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll elimina todos los elementos del registry, invocando cleanup por
// cada uno si se provee.
//
// Returns:
//   - count: cantidad de elementos eliminados
//   - err: errores acumulados del cleanup
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("falló el cleanup de %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return count, fmt.Errorf("errores durante ClearAll: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}

// Names devuelve los nombres registrados
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}
