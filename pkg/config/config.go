package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Chain  ChainConfig  `mapstructure:"chain"`
	Action ActionConfig `mapstructure:"action"`
}

type AppConfig struct {
	Env             string `mapstructure:"env"`
	LogLevel        string `mapstructure:"log_level"`
	HttpPort        string `mapstructure:"http_port"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // 秒
}

// ChainConfig 目标链与金库合约
type ChainConfig struct {
	RpcUrl   string `mapstructure:"rpc_url"`
	ChainID  int64  `mapstructure:"chain_id"`
	Name     string `mapstructure:"name"`     // 返回给客户端的链名称, 例如 "Avalanche Fuji"
	Source   string `mapstructure:"source"`   // Action 描述里的 chains.source, 例如 "fuji"
	Contract string `mapstructure:"contract"` // 金库合约地址
}

// ActionConfig Action 描述中的展示字段
type ActionConfig struct {
	Path         string `mapstructure:"path"`
	URL          string `mapstructure:"url"`
	Title        string `mapstructure:"title"`
	Description  string `mapstructure:"description"`
	Icon         string `mapstructure:"icon"`          // 相对 baseUrl 的图标路径
	DefaultHost  string `mapstructure:"default_host"`  // 请求缺少 Host 头时使用
	DefaultProto string `mapstructure:"default_proto"` // 请求缺少 X-Forwarded-Proto 头时使用
}

var Global Config

func Init() {
	// 先加载 .env (可选)，再交给 viper 读取环境变量
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath(".")      // optionally look for config in the working directory
	viper.AddConfigPath("./config")

	// 环境变量设置, 例如 CHAIN_RPC_URL 覆盖 chain.rpc_url
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 设置默认值
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: Config file not found, using defaults and environment variables")
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

// Default 返回只包含默认值的配置 (测试和 CLI 离线模式使用)
func Default() Config {
	v := viper.New()
	applyDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode defaults, %v", err)
	}
	return cfg
}

func setDefaults() {
	applyDefaults(viper.GetViper())
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "3000")
	v.SetDefault("app.shutdown_timeout", 5)

	v.SetDefault("chain.rpc_url", "https://api.avax-test.network/ext/bc/C/rpc")
	v.SetDefault("chain.chain_id", 43113)
	v.SetDefault("chain.name", "Avalanche Fuji")
	v.SetDefault("chain.source", "fuji")
	v.SetDefault("chain.contract", "0x610BDFD4408c8c9b87C3bd48e1128dF2c17301A8")

	v.SetDefault("action.path", "/api/mi-app")
	v.SetDefault("action.url", "https://sherry.social")
	v.SetDefault("action.title", "Minka Treasury")
	v.SetDefault("action.description", "Participate by voting on community proposals and donate to Minka's treasury.")
	v.SetDefault("action.icon", "/minka_treasury.png")
	v.SetDefault("action.default_host", "localhost:3000")
	v.SetDefault("action.default_proto", "http")
}
