package config

// pantryfile represents the structure of the pantry.yaml configuration file.
type pantryfile struct {
	Service serviceDTO `yaml:"service"`
	Auth    authDTO    `yaml:"auth"`
	Debug   bool       `yaml:"debug"`
}

type serviceDTO struct {
	BaseURL    string `yaml:"baseURL"`
	Timeout    string `yaml:"timeout"`
	Retries    int    `yaml:"retries"`
	RetryDelay string `yaml:"retryDelay"`
}

type authDTO struct {
	TokenEnv string `yaml:"tokenEnv"`
}
