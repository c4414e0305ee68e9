package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	InternalConfig struct {
		App      App
		SalonAPI SalonAPI
		JWT      JWT
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeoutInSeconds  int
		SuperadminAPIKeyHash      string
		ScheduleCacheTTLInMinutes int
		ScheduleUpdatedQueue      string
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

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	SalonAPI struct {
		BaseUrl          string
		TimeoutInSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
