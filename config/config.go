package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration contiene la información estática necesaria para ejecutar la
// aplicación: servidor, base de datos, autenticación y parámetros de negocio.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Modo de inicialización (siembra datos por defecto)
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Dirección del servidor
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Secreto para firmar tokens
	TokenTTLHours         int    `env:"TOKEN_TTL_HOURS" envDefault:"72"`           // Vigencia del token (horas)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI de conexión a MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Nombre de la base de datos
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origins permitidos (separados por coma, * = todos)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Permitir credenciales
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Máximo de requests por ventana (0 = sin límite)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Ventana de rate limit (segundos)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Activar rate limiting
	// Subida de archivos
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`               // Directorio de archivos subidos
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`           // URL pública base de los archivos
	FrontendURL   string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL del frontend
	// Negocio
	WhatsAppGreeting    string `env:"WHATSAPP_GREETING" envDefault:"Hola %s, soy de ALFA BOLSAS. Te contacto por tu pedido #%s"` // Plantilla del saludo de WhatsApp
	ReminderWindowHours int    `env:"REMINDER_WINDOW_HOURS" envDefault:"24"`                                                     // Antigüedad mínima para recordatorios (horas)
	StrictTransitions   bool   `env:"ESTADOS_ESTRICTOS" envDefault:"false"`                                                      // Validar transiciones de estado contra la tabla permitida
	// Administrador por defecto
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@alfabolsas.com"` // Email del admin sembrado en init
	AdminPassword string `env:"ADMIN_PASSWORD"`                                // Contraseña del admin sembrado (vacío = no sembrar)
	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Activar HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Ruta al certificado (.crt o .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Ruta a la clave privada (.key)
}

// getEnvPath devuelve la ruta al archivo env según el entorno
func getEnvPath() string {
	// Por defecto se usa el entorno development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf porque el logger todavía no está inicializado aquí
		fmt.Printf("No se pudo obtener el directorio actual: %v\n", err)
		return ""
	}

	// Buscar el directorio config/env subiendo por el árbol
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig lee la configuración desde el archivo env del entorno actual
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("No se encontró el directorio config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("No se pudo cargar el archivo env en %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Error al parsear la configuración: %+v\n", err)
		return nil
	}

	return &cfg
}
