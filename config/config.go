package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Debug              bool   `envconfig:"debug"`
	Port               int    `envconfig:"port" default:"8080"`
	Env                string `envconfig:"env"`
	PostgresHost       string `envconfig:"postgres_host"`
	PostgresUser       string `envconfig:"postgres_user"`
	PostgresDB         string `envconfig:"postgres_db"`
	PostgresPort       int    `envconfig:"postgres_port"`
	PostgresPassword   string `envconfig:"postgres_password"`
	JWTSecret          string `envconfig:"jwt_secret"`
	MailgunApiKey      string `envconfig:"mg_public_api_key"`
	MgDomain           string `envconfig:"mg_domain"`
	MgEmailFrom        string `envconfig:"email_from"`
	BaseUrl            string `envconfig:"base_url"`
	Host               string `envconfig:"host"`
	GoogleClientID     string `envconfig:"google_client_id"`
	GoogleClientSecret string `envconfig:"google_client_secret"`
	GoogleRedirectURL  string `envconfig:"google_redirect_url"`
	AwsRegion          string `envconfig:"aws_region"`
	AwsBucket          string `envconfig:"aws_bucket"`
	AwsAccessKeyID     string `envconfig:"aws_access_key_id"`
	AwsSecretAccessKey string `envconfig:"aws_secret_access_key"`
	ChatDataDir        string `envconfig:"chat_data_dir" default:"./data/chat"`
	ChatReplyDelayMS   int    `envconfig:"chat_reply_delay_ms" default:"1000"`
}

func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("recyclemart", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
