package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and string
// durations ("24h", "15m").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		CookieExpire  Duration `json:"cookie_expire"`
		BcryptCost    int      `json:"bcrypt_cost"`
		ResetTokenTTL Duration `json:"reset_token_ttl"`
		PublicBaseURL string   `json:"public_base_url"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string `json:"dsn"`
			ConnectAttempts int    `json:"connect_attempts"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mail struct {
			Driver       string `json:"driver"`
			From         string `json:"from"`
			SMTPHost     string `json:"smtp_host"`
			SMTPPort     int    `json:"smtp_port"`
			SMTPUser     string `json:"smtp_user"`
			SMTPPassword string `json:"smtp_password"`
			RelayURL     string `json:"relay_url"`
			RelayToken   string `json:"relay_token"`
		} `json:"mail,omitempty"`

		S3 struct {
			Endpoint  string `json:"endpoint"`
			Region    string `json:"region"`
			Bucket    string `json:"bucket"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			PublicURL string `json:"public_url"`
		} `json:"s3,omitempty"`

		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		HashConcurrency int `json:"hash_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	mail := jsonCfg.Adapter.Mail
	s3 := jsonCfg.Adapter.S3

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			CookieExpire:  time.Duration(jsonCfg.App.CookieExpire),
			BcryptCost:    jsonCfg.App.BcryptCost,
			ResetTokenTTL: time.Duration(jsonCfg.App.ResetTokenTTL),
			PublicBaseURL: jsonCfg.App.PublicBaseURL,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				ConnectAttempts: jsonCfg.Storage.DB.ConnectAttempts,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			Mail: Mail{
				Driver:       mail.Driver,
				From:         mail.From,
				SMTPHost:     mail.SMTPHost,
				SMTPPort:     mail.SMTPPort,
				SMTPUser:     mail.SMTPUser,
				SMTPPassword: mail.SMTPPassword,
				RelayURL:     mail.RelayURL,
				RelayToken:   mail.RelayToken,
			},
			S3: S3{
				Endpoint:  s3.Endpoint,
				Region:    s3.Region,
				Bucket:    s3.Bucket,
				AccessKey: s3.AccessKey,
				SecretKey: s3.SecretKey,
				PublicURL: s3.PublicURL,
			},
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			HashConcurrency: jsonCfg.Workers.HashConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
