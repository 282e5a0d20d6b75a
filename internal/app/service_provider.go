package app

import (
	"context"
	rouletteAPI "roulette_backend/internal/api/roulette"
	seatAPI "roulette_backend/internal/api/seat"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/logger"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/repository/round_memory_repo"
	"roulette_backend/internal/repository/round_repo"
	"roulette_backend/internal/repository/stats_repo"
	"roulette_backend/internal/service"
	"roulette_backend/internal/service/roulette"
	"roulette_backend/internal/service/seat"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Seat bits
	jwtConfig config.JWTConfig
	seatServ  service.SeatService
	seatHand  *seatAPI.Handler

	// Roulette bits
	tableCfg     config.TableConfig
	roundRepo    repository.RoundRepository
	statsRepo    repository.StatsRepository
	rouletteServ service.RouletteService
	rouletteHand *rouletteAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = round_repo.EnsureSchema(ctx, dbc)
		if err != nil {
			panic("failed to create schema: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) SeatService() service.SeatService {
	if sp.seatServ == nil {
		sp.seatServ = seat.NewSeatService(sp.JWTConfig(), logger.Log.Named("seat"))
	}
	return sp.seatServ
}

func (sp *ServiceProvider) SeatHandler() *seatAPI.Handler {
	if sp.seatHand == nil {
		sp.seatHand = seatAPI.NewHandler(seatAPI.HandlerDeps{
			Serv: sp.SeatService(),
			Log:  logger.Log.Named("seat"),
		})
	}
	return sp.seatHand
}

func (sp *ServiceProvider) TableCfg() config.TableConfig {
	if sp.tableCfg == nil {
		cfg, err := env.NewTableConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get table config: " + err.Error())
		}
		sp.tableCfg = cfg
	}
	return sp.tableCfg
}

// RoundRepository Postgres, если задан PG_DSN, иначе память процесса
func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		if sp.PgConfig().DSN() == "" {
			logger.Log.Info("PG_DSN is empty, keeping round history in memory")
			sp.roundRepo = round_memory_repo.NewRoundRepository(sp.TableCfg().HistoryRetention())
		} else {
			sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx), sp.TXManager(ctx))
		}
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.TableCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(
			roulette.NewWheel(),
			sp.RoundRepository(ctx),
			sp.StatsRepository(),
			logger.Log.Named("roulette"),
		)
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv:         sp.RouletteService(ctx),
			Chips:        sp.TableCfg().Chips(),
			HistoryLimit: sp.TableCfg().HistoryLimit(),
			Log:          logger.Log.Named("api"),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = NewRouter(RouterDeps{
			RouletteHandler: sp.RouletteHandler(ctx),
			SeatHandler:     sp.SeatHandler(),
			Seats:           sp.SeatService(),
			CORSOrigins:     sp.TableCfg().CORSOrigins(),
			Log:             logger.Log.Named("http"),
		})
	}

	return sp.router
}

// Close освобождает пул соединений, если он создавался
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
