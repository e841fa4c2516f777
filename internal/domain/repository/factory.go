package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Rewards() RewardRepository
	Activities() ActivityRepository
	Stats() StatsRepository
}
