package config

type (
	DriverConfig struct {
		Logger Logger `mapstructure:"logger"`
	}
	Logger struct {
		Level               string `mapstructure:"level" validate:"oneof=debug info warn error"`
		OutputFileName      string `mapstructure:"output_filename"`
		OutputErrorFileName string `mapstructure:"output_error_filename"`
		Encoding            string `mapstructure:"encoding" validate:"omitempty,oneof=json console"`
	}
)
