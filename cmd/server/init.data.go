package main

import (
	"context"

	authsvc "github.com/Ersonet/alfabolsas-ecommerce/internal/api/auth/service"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/global"
	"github.com/Ersonet/alfabolsas-ecommerce/internal/logger"
)

// InitDefaultData siembra los datos iniciales: el usuario administrador si
// ADMIN_PASSWORD está configurado y todavía no existe
func InitDefaultData() {
	log := logger.GetAppLogger()

	usuarioService, err := authsvc.NewUsuarioService()
	if err != nil {
		log.Fatalf("No se pudo crear el service de usuarios: %v", err)
	}

	cfg := global.MongoDB_ServerConfig
	if err := usuarioService.AsegurarAdmin(context.TODO(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Warnf("No se pudo sembrar el usuario admin: %v", err)
		return
	}

	log.Info("Datos iniciales verificados")
}
