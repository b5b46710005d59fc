package repositories

// RepositoryContainer bundles all repository implementations so wiring code
// can pass them around as one unit.
type RepositoryContainer struct {
	User         UserRepository
	RefreshToken RefreshTokenRepository
	Product      ProductRepository
}
