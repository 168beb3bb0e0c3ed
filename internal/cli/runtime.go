package cli

import (
	"context"
	"errors"
	"fmt"

	"freight-emissions/internal/core/cache"
	"freight-emissions/internal/core/config"
	"freight-emissions/internal/core/httpclient"
	"freight-emissions/internal/core/logger"
	"freight-emissions/internal/core/proxy"
	authAdapters "freight-emissions/internal/features/auth/adapters"
	authService "freight-emissions/internal/features/auth/service"
	distanceAdapters "freight-emissions/internal/features/distance/adapters"
	distanceService "freight-emissions/internal/features/distance/service"
	emissionsAdapters "freight-emissions/internal/features/emissions/adapters"
	emissionsService "freight-emissions/internal/features/emissions/service"
	reportAdapters "freight-emissions/internal/features/report/adapters"
	"freight-emissions/internal/features/report/ports"
	reportService "freight-emissions/internal/features/report/service"
	shipmentService "freight-emissions/internal/features/shipment/service"

	"go.uber.org/zap"
)

// runtime holds the components of one process.
type runtime struct {
	tokens     *authService.TokenStore
	calculator *shipmentService.Calculator
	reports    *reportService.ReportServiceImpl
	cache      cache.Cache
}

// newRuntime builds every component from configuration.
func newRuntime(ctx context.Context, cfg *config.AppConfig) (*runtime, error) {
	proxySettings := proxy.FromConfig(cfg.Proxy)
	client := httpclient.NewClient(cfg.NTM.Timeout(), proxySettings)

	tokens := authService.NewTokenStore(
		authAdapters.NewOIDCAdapter(client, cfg.NTM),
		authService.Credentials{Username: cfg.NTM.Username, Password: cfg.NTM.Password},
		cfg.Factors.TokenSafetyMargin(),
	)

	driving, err := distanceAdapters.NewGoogleMapsAdapter(client, cfg.Maps)
	if err != nil {
		return nil, err
	}
	resolver := distanceService.NewResolver(
		driving,
		distanceAdapters.NewSeaRouteAdapter(client, cfg.SeaRoute),
		cfg.Factors.AirDetourKm,
	)
	estimator := emissionsAdapters.NewNTMAdapter(client, cfg.NTM, tokens)
	legs := emissionsService.NewLegCalculator(resolver, estimator, cfg.Factors.RFI)

	defaults, err := emissionsService.DefaultParameters(cfg.Defaults)
	if err != nil {
		return nil, fmt.Errorf("invalid default parameters: %w", err)
	}

	rt := &runtime{
		tokens:     tokens,
		calculator: shipmentService.NewCalculator(legs, defaults, cfg.Defaults.DefaultBellyAircraftModel),
	}

	var repo ports.ReportRepository
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, "freight-emissions:")
		if err != nil {
			return nil, err
		}
		if err := redisCache.Ping(ctx); err != nil {
			redisCache.Close()
			return nil, fmt.Errorf("report storage unreachable: %w", err)
		}
		rt.cache = redisCache
		repo = reportAdapters.NewRedisReportRepository(redisCache, cfg.Redis.ReportTTL())
	}
	rt.reports = reportService.NewReportService(repo)

	return rt, nil
}

// Close ends the identity session and releases the storage connection.
func (rt *runtime) Close(ctx context.Context) error {
	var errs []error
	if err := rt.tokens.EndSession(ctx); err != nil {
		logger.Get().Warn("Failed to end identity session", zap.Error(err))
		errs = append(errs, err)
	}
	if rt.cache != nil {
		if err := rt.cache.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
