package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfig 从文件加载配置，返回实例供显式注入
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.JWT.ExpireDays <= 0 {
		cfg.JWT.ExpireDays = 30
	}

	return &cfg, nil
}
