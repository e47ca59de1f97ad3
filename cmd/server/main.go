package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/logger"
)

// initLogger inicializa el sistema de logs de toda la aplicación
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("No se pudo inicializar el logger: %v", err))
	}
	logger.GetAppLogger().Info("Sistema de logs inicializado")
}

// resolvePath resuelve una ruta relativa desde el directorio raíz del
// proyecto (el que contiene config/env)
func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	currentDir, err := os.Getwd()
	if err != nil {
		return path
	}
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(currentDir, path)
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return path
		}
		currentDir = parentDir
	}
}

// mainThread inicializa y corre el servidor Fiber en el thread principal
func mainThread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address
	log := logger.GetAppLogger()

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("No existe el certificado TLS: %s", certPath)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("No existe la clave TLS: %s", keyPath)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error al cargar el certificado TLS: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error al crear el listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
		}).Info("Servidor HTTPS iniciado")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error en el listener de Fiber con TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Servidor HTTP iniciado")

		if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
			log.Fatalf("Error en el Listen de Fiber: %v", err)
		}
	}
}

func main() {
	initLogger()

	InitGlobal()

	InitRegistry()

	InitDefaultData()

	mainThread()
}
