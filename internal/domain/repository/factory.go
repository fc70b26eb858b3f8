package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Ledger() LedgerRepository
	Bonuses() BonusRepository
	Products() ProductRepository
	Categories() CategoryRepository
	ShippingZones() ShippingZoneRepository
	Banners() BannerRepository
	Popups() PopupRepository
	Playlists() PlaylistRepository
	Videos() VideoRepository
	Favorites() FavoriteRepository
}
