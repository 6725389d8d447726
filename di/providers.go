package di

import (
	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/channel/provider"
	"hotelbook/internal/domains/channel/provider/makemytrip"
	channelRepository "hotelbook/internal/domains/channel/repository"
	"hotelbook/shared/clock"
)

// provideRegistry registers every channel adapter behind the payload audit log.
func provideRegistry(cfg *config.Config, otel otel.Otel, payloadRepo channelRepository.Payload, clk clock.Clock) *provider.Registry {
	registry := provider.NewRegistry(cfg.Channel.Providers,
		makemytrip.New(cfg, otel),
	)

	registry.Wrap(func(p provider.Provider) provider.Provider {
		return provider.Audited(p, payloadRepo, clk)
	})

	return registry
}
