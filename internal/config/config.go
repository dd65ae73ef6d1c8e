package config

const (
	DefaultGatewayPort = 8081
	DefaultCalcPort    = 6143

	// Logger defaults when services.yaml omits them
	DefaultLogFolder     = "./logs"
	DefaultLogMaxFileMB  = 50
	DefaultRetentionDays = 14
)
