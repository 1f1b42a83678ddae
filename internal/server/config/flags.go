package config

import (
	"flag"
	"os"
	"time"

	"github.com/charafmezdari/portfolio/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-f string   upload directory
//	-m int      max upload size, bytes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name (empty keeps the disk backend)
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-f", "-m", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.UploadDir, "f", config.UploadDir, "upload directory")
	fs.Int64Var(&config.MaxUploadSize, "m", config.MaxUploadSize, "max upload size (in bytes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
