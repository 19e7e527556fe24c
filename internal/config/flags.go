package config

import (
	"errors"
	"flag"
	"net"
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

// parseFlags parses command-line flags into a partial config.
//
// Flags:
//
//	-a gateway listen address in format [host]:[port]
//	-c/-config json file path with configs
//	-token caller access token
//	-chatwoot-url chatwoot base URL
//	-chatwoot-account chatwoot account id
//	-evolution-url evolution base URL
//	-evolution-key evolution API key
//	-request-timeout outbound request timeout (e.g., "10s")
//	-refresh-interval background refresh interval (e.g., "30s")
//	-log-file admin panel log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("inbox-admin", flag.ContinueOnError)

	var gatewayAddress NetAddress
	var jsonConfigPath string
	var accessToken string
	var chatwootURL, chatwootAccount string
	var evolutionURL, evolutionKey string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var logFile string

	fs.Var(&gatewayAddress, "a", "Gateway net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessToken, "token", "", "Caller access token")
	fs.StringVar(&chatwootURL, "chatwoot-url", "", "Chatwoot base URL")
	fs.StringVar(&chatwootAccount, "chatwoot-account", "", "Chatwoot account id")
	fs.StringVar(&evolutionURL, "evolution-url", "", "Evolution base URL")
	fs.StringVar(&evolutionKey, "evolution-key", "", "Evolution API key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 10s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 30s)")
	fs.StringVar(&logFile, "log-file", "", "Log file of the admin panel")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			AccessToken: accessToken,
			LogFile:     logFile,
		},
		Chatwoot: Service{
			BaseURL:        chatwootURL,
			AccountID:      chatwootAccount,
			RequestTimeout: requestTimeout,
		},
		Evolution: Service{
			BaseURL:        evolutionURL,
			APIKey:         evolutionKey,
			RequestTimeout: requestTimeout,
		},
		Gateway: Gateway{
			Address: gatewayAddress.String(),
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless the host is
// "localhost" or empty (listen on all interfaces).
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
