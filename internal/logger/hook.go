package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook escribe las entradas de log en una goroutine aparte para no
// bloquear el manejo de requests. Las entradas se almacenan en un buffer y se
// escriben en todos los writers configurados (archivo, stdout).
type AsyncHook struct {
	writers    []io.Writer
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHookWithWriters crea un hook asíncrono con varios writers.
// bufferSize es la capacidad del buffer de entradas (por defecto 1000).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels devuelve los niveles que maneja este hook
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire se invoca por cada entrada nueva. No bloquea: solo encola la entrada.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook cerrado: escribir directo en los writers como fallback
		var data []byte
		var err error

		if entry.Logger.Formatter != nil {
			data, err = entry.Logger.Formatter.Format(entry)
		} else {
			line, strErr := entry.String()
			if strErr != nil {
				return strErr
			}
			data = []byte(line)
		}

		if err != nil {
			return err
		}

		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	// Envío no bloqueante: si el canal está lleno la entrada se descarta
	// antes que frenar el request
	select {
	case h.entries <- entry:
	default:
	}

	return nil
}

// processEntries procesa las entradas en una goroutine aparte.
// Tiene recover para que un panic del logger no tumbe el servidor.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// No se puede usar el logger acá, generaría un ciclo;
					// se reporta directo a stderr
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] panic recuperado en la goroutine del logger: %v\n", r)
					debug.PrintStack()
				}
			}()

			// El FilterHook marca las entradas filtradas con "_filtered"
			if filtered, ok := entry.Data["_filtered"].(bool); ok && filtered {
				return
			}

			// Quitar la marca "_filtered" antes de formatear
			filteredEntry := entry
			if _, ok := entry.Data["_filtered"]; ok {
				filteredEntry = entry.Dup()
				delete(filteredEntry.Data, "_filtered")
			}

			var data []byte
			var err error

			if filteredEntry.Logger.Formatter != nil {
				data, err = filteredEntry.Logger.Formatter.Format(filteredEntry)
			} else {
				line, strErr := filteredEntry.String()
				if strErr != nil {
					return
				}
				data = []byte(line)
			}

			if err != nil {
				return
			}

			// Un writer lento no debe impedir escribir en los demás
			for _, writer := range h.writers {
				_, err = writer.Write(data)
				if err != nil {
					continue
				}
			}
		}()
	}
}

// Close cierra el hook y espera a que se procesen las entradas pendientes
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
