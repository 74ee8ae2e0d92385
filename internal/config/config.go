package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	Env           string `mapstructure:"ENV"`
	DbName        string `mapstructure:"POSTGRES_DB"`
	DbHost        string `mapstructure:"POSTGRES_HOST"`
	DbPort        string `mapstructure:"POSTGRES_PORT"`
	DbUser        string `mapstructure:"POSTGRES_USER"`
	DbPas         string `mapstructure:"POSTGRES_PASSWORD"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	TokenKey      string `mapstructure:"AUTH_TOKEN_KEY"`
	SmtpAuthKey   string `mapstructure:"SMTP_AUTH_KEY"`
	EmailAccount  string `mapstructure:"EMAIL_ACCOUNT"`
	EmailSender   string `mapstructure:"EMAIL_SENDER"`
}

// Loader 負責讀取與熱更新config, 不提供package級單例,
// 由啟動流程建構後顯式傳遞
type Loader struct {
	v  *viper.Viper
	mu sync.RWMutex
	cf *Config
}

// Load 讀取.env檔, 同時接受環境變數覆寫, 並監聽檔案變更
func Load(path string) (*Loader, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	l := &Loader{v: v}
	if err := l.reload(); err != nil {
		return nil, err
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// 重讀失敗就保留舊值
		_ = l.reload()
	})

	return l, nil
}

func (l *Loader) reload() error {
	cf := &Config{}
	if err := l.v.Unmarshal(cf); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	l.mu.Lock()
	l.cf = cf
	l.mu.Unlock()
	return nil
}

func (l *Loader) Get() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cf
}
