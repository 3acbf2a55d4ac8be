package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-cookie-expire session cookie lifetime (e.g., "24h")
//	-bcrypt-cost bcrypt work factor
//	-reset-token-ttl password reset challenge lifetime (e.g., "15m")
//	-public-base-url base URL used in password reset links
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-driver mail transport: smtp or http
//	-s3-bucket bucket for blog images
//	-hash-concurrency maximum concurrent password hashes
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var cookieExpire time.Duration
	var bcryptCost int
	var resetTokenTTL time.Duration
	var publicBaseURL string
	var requestTimeout time.Duration
	var mailDriver string
	var s3Bucket string
	var hashConcurrency int

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&cookieExpire, "cookie-expire", 0, "Session cookie lifetime (e.g., 24h)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.DurationVar(&resetTokenTTL, "reset-token-ttl", 0, "Password reset challenge lifetime (e.g., 15m)")
	fs.StringVar(&publicBaseURL, "public-base-url", "", "Base URL used in password reset links")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&mailDriver, "mail-driver", "", "Mail transport: smtp or http")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "Bucket for blog images")
	fs.IntVar(&hashConcurrency, "hash-concurrency", 0, "Maximum concurrent password hashes")

	if !fs.Parsed() {
		if err := fs.Parse(os.Args[1:]); err != nil {
			return nil, err
		}
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			CookieExpire:  cookieExpire,
			BcryptCost:    bcryptCost,
			ResetTokenTTL: resetTokenTTL,
			PublicBaseURL: publicBaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Mail: Mail{Driver: mailDriver},
			S3:   S3{Bucket: s3Bucket},
		},
		Workers: Workers{
			HashConcurrency: hashConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
