package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to a flag set by [BindFlags].
type Flags struct {
	cfg           StructuredConfig
	serverAddress NetAddress
}

// BindFlags registers all configuration flags on fs. Call [Flags.Config]
// after fs has been parsed.
//
// Flags:
//
//	--api-url            backend endpoint for remote mode
//	--request-timeout    remote call timeout (e.g. "30s"), 0 waits forever
//	--upload-timeout     opaque upload timeout
//	--callback-prefix    callback token prefix
//	-a/--address         development backend listen address [host]:[port]
//	-c/--config          json file path with configs
//	--env-file           dotenv file loaded before env parsing
//	--admin-email        development backend admin login
//	--token-sign-key     admin token signing key
//	--token-duration     admin token lifetime
//	--db-driver          development backend storage: memory, sqlite, postgres
//	-d/--db-dsn          storage data source name
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVar(&f.cfg.Adapter.APIURL, "api-url", "", "Backend endpoint URL for remote mode")
	fs.DurationVar(&f.cfg.Adapter.RequestTimeout, "request-timeout", 0, "Remote call timeout (e.g., 30s), 0 waits forever")
	fs.DurationVar(&f.cfg.Adapter.UploadTimeout, "upload-timeout", 0, "Opaque upload timeout (e.g., 1m)")
	fs.StringVar(&f.cfg.Adapter.CallbackPrefix, "callback-prefix", "", "Callback token prefix")
	fs.VarP(&f.serverAddress, "address", "a", "Backend listen address host:port")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.cfg.EnvFile, "env-file", "", "Dotenv file path")
	fs.StringVar(&f.cfg.App.AdminEmail, "admin-email", "", "Admin login e-mail")
	fs.StringVar(&f.cfg.App.TokenSignKey, "token-sign-key", "", "Admin token signing key")
	fs.DurationVar(&f.cfg.App.TokenDuration, "token-duration", 0, "Admin token duration (e.g., 8h)")
	fs.StringVar(&f.cfg.DB.Driver, "db-driver", "", "Backend storage driver: memory, sqlite or postgres")
	fs.StringVarP(&f.cfg.DB.DSN, "db-dsn", "d", "", "Backend storage DSN")

	return f
}

// Config returns the flag values as a [StructuredConfig]. Unset flags keep
// their zero values so that lower priority sources are not overridden.
func (f *Flags) Config() *StructuredConfig {
	cfg := f.cfg
	cfg.Server.HTTPAddress = f.serverAddress.String()
	return &cfg
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; any other host must be "localhost" or
// an IP address.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
