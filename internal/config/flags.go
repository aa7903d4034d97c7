// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values of every configuration flag registered on a
// FlagSet by [RegisterFlags]. Values are read after the FlagSet is parsed.
type Flags struct {
	driver         string
	dsn            string
	baseURL        string
	requestTimeout time.Duration
	poolSize       int
	queueSize      int
	syncInterval   time.Duration
	placeholder    NetAddress
	logLevel       string
	logFile        string
	configPath     string
}

// RegisterFlags registers all configuration flags on fs.
//
// Flags:
//
//	-d/--driver          database driver (sqlite3, sqlite, pgx)
//	--dsn                database DSN
//	-u/--base-url        remote placeholder API base URL
//	--request-timeout    remote request timeout (e.g. "15s")
//	--pool-size          number of background workers
//	--queue-size         pending operation queue capacity
//	--sync-interval      periodic sync interval, 0 disables
//	-a/--address         placeholder server address in format [host]:[port]
//	--log-level          log level
//	--log-file           log file of the interactive client
//	-c/--config          JSON or YAML config file path
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := new(Flags)

	fs.StringVarP(&f.driver, "driver", "d", "", "Database driver: sqlite3, sqlite or pgx")
	fs.StringVar(&f.dsn, "dsn", "", "Database DSN")
	fs.StringVarP(&f.baseURL, "base-url", "u", "", "Remote users API base URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	fs.IntVar(&f.poolSize, "pool-size", 0, "Number of background workers")
	fs.IntVar(&f.queueSize, "queue-size", 0, "Pending operation queue capacity")
	fs.DurationVar(&f.syncInterval, "sync-interval", 0, "Periodic sync interval, 0 disables")
	fs.VarP(&f.placeholder, "address", "a", "Placeholder server address host:port")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")
	fs.StringVar(&f.logFile, "log-file", "", "Log file of the interactive client")
	fs.StringVarP(&f.configPath, "config", "c", "", "JSON or YAML config file path")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: f.driver,
				DSN:    f.dsn,
			},
		},
		Adapter: Adapter{
			BaseURL:        f.baseURL,
			RequestTimeout: f.requestTimeout,
		},
		Workers: Workers{
			PoolSize:     f.poolSize,
			QueueSize:    f.queueSize,
			SyncInterval: f.syncInterval,
		},
		Placeholder: Placeholder{
			Address: f.placeholder.String(),
		},
		Log: Log{
			Level: f.logLevel,
			File:  f.logFile,
		},
		ConfigFilePath: f.configPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing has been set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
