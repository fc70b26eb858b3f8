package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/shopcore/adminapi/internal/config"
	"github.com/shopcore/adminapi/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.LedgerRepository { return s.Ledger() },
		func(s *Storage) repository.BonusRepository { return s.Bonuses() },
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.CategoryRepository { return s.Categories() },
		func(s *Storage) repository.ShippingZoneRepository { return s.ShippingZones() },
		func(s *Storage) repository.BannerRepository { return s.Banners() },
		func(s *Storage) repository.PopupRepository { return s.Popups() },
		func(s *Storage) repository.PlaylistRepository { return s.Playlists() },
		func(s *Storage) repository.VideoRepository { return s.Videos() },
		func(s *Storage) repository.FavoriteRepository { return s.Favorites() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
