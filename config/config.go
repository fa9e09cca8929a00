// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Booking  BookingConfig  `mapstructure:"booking"`
	Hours    HoursConfig    `mapstructure:"hours"`
	API      APIConfig      `mapstructure:"api"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `json:"environment"`
	Mode         string `mapstructure:"mode"`
}

// StorageConfig описывает durable storage для бронирований.
// Backend: "redis" или "file". Key — имя записи с полным массивом.
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	Key      string `mapstructure:"key"`
	FilePath string `mapstructure:"file_path"`
}

type BookingConfig struct {
	MinGuests          int    `mapstructure:"min_guests"`
	MaxGuests          int    `mapstructure:"max_guests"`
	HorizonDays        int    `mapstructure:"horizon_days"` // максимум дней вперёд
	RefPrefix          string `mapstructure:"ref_prefix"`
	SpecialRequestsMax int    `mapstructure:"special_requests_max"`
}

// HoursConfig задаёт сетку посадок. Слоты идут каждый час
// от первой до последней посадки включительно.
type HoursConfig struct {
	WeekdayFirstSeating int      `mapstructure:"weekday_first_seating"`
	WeekdayLastSeating  int      `mapstructure:"weekday_last_seating"`
	WeekendFirstSeating int      `mapstructure:"weekend_first_seating"`
	WeekendLastSeating  int      `mapstructure:"weekend_last_seating"`
	SundayFirstSeating  int      `mapstructure:"sunday_first_seating"`
	SundayLastSeating   int      `mapstructure:"sunday_last_seating"`
	LeadTimeMinutes     int      `mapstructure:"lead_time_minutes"` // минимум до посадки сегодня
	ClosedDates         []string `mapstructure:"closed_dates"`      // ISO-даты, когда ресторан закрыт
}

// APIConfig настраивает заглушку reservation API
type APIConfig struct {
	Latency time.Duration `mapstructure:"latency"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	Enabled  bool   `mapstructure:"enabled"`
}

type WorkerConfig struct {
	SyncInterval        int `mapstructure:"sync_interval"`         // в минутах
	SlotRefreshInterval int `mapstructure:"slot_refresh_interval"` // в минутах
}

type RedisConfig struct {
	URL      string `json:"URL"`
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required"`
	Password string `json:"password" validate:"required"`
	DB       int    `json:"db" validate:"required"`

	// Настройки пула соединений
	MaxRetries   int
	PoolSize     int
	MinIdleConns int
	MaxIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}
	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
