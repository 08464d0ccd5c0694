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

// ParseFlags parses all server configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres:// URL or sqlite file path)
//	-undo-window how long the undo slot stays valid (e.g., "2500ms")
//	-request-timeout HTTP request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var undoWindow time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("note-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&undoWindow, "undo-window", 0, "Undo slot lifetime (e.g., 2500ms)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			UndoWindow: undoWindow,
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
		JSONFilePath: jsonConfigPath,
	}, nil
}

// ParseClientFlags parses all client configuration flags from os.Args.
//
// Flags:
//
//	-s note server base address (e.g., "http://localhost:8080")
//	-request-timeout request timeout (e.g., "10s")
//	-theme initial UI theme ("dark" or "light")
//	-log client log file path
//	-c/-config json file path with configs
func ParseClientFlags() (*ClientConfig, error) {
	return parseClientFlags(os.Args[1:])
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	var serverAddress string
	var requestTimeout time.Duration
	var theme string
	var logPath string
	var jsonConfigPath string

	fs := flag.NewFlagSet("note-client", flag.ContinueOnError)
	fs.StringVar(&serverAddress, "s", "", "Note server base address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&theme, "theme", "", "UI theme: dark or light")
	fs.StringVar(&logPath, "log", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &ClientConfig{
		App: ClientApp{
			Theme:   theme,
			LogPath: logPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that
// mergo falls through to the next configuration source.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("invalid host")
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
