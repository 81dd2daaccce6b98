package router

import (
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/container"
	pginfra "github.com/oualidazemray/Bellavista1.0-sub002/internal/infrastructure/postgres"
	handlers "github.com/oualidazemray/Bellavista1.0-sub002/internal/interface/http"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	alertRepo := pginfra.NewAlertRepository(pool)
	reservationRepo := pginfra.NewReservationRepository(pool)

	authSvc := application.NewAuthService(userRepo, jwt, container.GetRedis(), logger, container.GetRabbitPub(), cfg)
	alertSvc := application.NewAlertService(alertRepo, logger)
	reservationSvc := application.NewReservationService(reservationRepo)
	clientSvc := application.NewClientService(userRepo)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg)
	alertHandler := handlers.NewAlertHandler(alertSvc, logger)
	reservationHandler := handlers.NewReservationHandler(reservationSvc, logger)
	clientHandler := handlers.NewClientHandler(clientSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, jwt))
	r.Add(modules.NewAdminModule(alertHandler, reservationHandler, jwt))
	r.Add(modules.NewAgentModule(clientHandler, jwt))
}
