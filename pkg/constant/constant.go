package constant

const (
	DefaultTokenType = "Bearer"

	DefaultAccessExpiryMin  = 15
	DefaultRefreshExpiryMin = 10080 // 7 days

	DefaultSweepIntervalMin = 60

	DefaultAppointmentStatus = "confirmed"

	BcryptCost = 12
)
