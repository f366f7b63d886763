package config

func Defaults() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "warn",
		},
		Display: DisplayConfig{
			TimeLayout: "2006-01-02 15:04:05",
		},
	}
}
