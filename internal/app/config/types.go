package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type InternalConfig struct {
	App      App
	JWT      JWT
	Ordering Ordering
}

type App struct {
	Env             string
	Port            string
	Version         string
	EndpointPrefix  string
	Timezone        string
	MaxRequests     int
	ShutdownTimeout int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

// Ordering carries the storefront policy knobs. EnableAllSlots is the
// explicit bypass for the slot availability rules; it is read once here and
// threaded through call sites rather than consulted from the environment
// deep in the slot logic.
type Ordering struct {
	EnableAllSlots       bool
	NotificationsQueue   string
	SessionExpTimeInHour int
	MenuImageMaxSizeInMB int64
	PlaceOrderRatePerMin int
	PlaceOrderBlockInMin int
}
