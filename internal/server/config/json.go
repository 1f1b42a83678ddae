package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/charafmezdari/portfolio/internal/flagx"
	"github.com/charafmezdari/portfolio/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "24h" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	UploadDir             string         `json:"upload_dir"`
	MaxUploadSize         int64          `json:"max_upload_size"`
	AdminEmail            string         `json:"admin_email"`
	AdminPassword         string         `json:"admin_password"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded. An unreadable or invalid file
// panics, since running with half-applied configuration is worse than not
// starting.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.UploadDir = c.UploadDir
	config.MaxUploadSize = c.MaxUploadSize
	config.AdminEmail = c.AdminEmail
	config.AdminPassword = c.AdminPassword
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
