package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly [Duration] type, so operators can write "24h" instead of
// nanosecond integers in the config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey              string   `json:"token_sign_key"`
		TokenIssuer               string   `json:"token_issuer"`
		SessionTokenDuration      Duration `json:"session_token_duration"`
		VerificationTokenDuration Duration `json:"verification_token_duration"`
		BcryptCost                int      `json:"bcrypt_cost"`
		BaseURL                   string   `json:"base_url"`
		Environment               string   `json:"environment"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	SMTP struct {
		Host        string   `json:"host"`
		Port        int      `json:"port"`
		From        string   `json:"from"`
		FromName    string   `json:"from_name"`
		Username    string   `json:"username"`
		Password    string   `json:"password"`
		TLS         bool     `json:"tls"`
		SendTimeout Duration `json:"send_timeout"`
	} `json:"smtp,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:              jsonCfg.App.TokenSignKey,
			TokenIssuer:               jsonCfg.App.TokenIssuer,
			SessionTokenDuration:      time.Duration(jsonCfg.App.SessionTokenDuration),
			VerificationTokenDuration: time.Duration(jsonCfg.App.VerificationTokenDuration),
			BcryptCost:                jsonCfg.App.BcryptCost,
			BaseURL:                   jsonCfg.App.BaseURL,
			Environment:               jsonCfg.App.Environment,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		SMTP: SMTP{
			Host:        jsonCfg.SMTP.Host,
			Port:        jsonCfg.SMTP.Port,
			From:        jsonCfg.SMTP.From,
			FromName:    jsonCfg.SMTP.FromName,
			Username:    jsonCfg.SMTP.Username,
			Password:    jsonCfg.SMTP.Password,
			TLS:         jsonCfg.SMTP.TLS,
			SendTimeout: time.Duration(jsonCfg.SMTP.SendTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
