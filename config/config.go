package config

import (
	"flag"
	"net"
	"regexp"
	"strconv"
)

type Config struct {
	Addr      string
	DBPath    string
	PublicDir string
	Debug     bool
}

func ParseFlags() (cfg Config) {
	var host string
	flag.StringVar(&host, "host", "127.0.0.1", "listen host name (default 127.0.0.1)")
	var port uint
	flag.UintVar(&port, "port", 8080, "listen port number (default 8080)")
	flag.StringVar(&cfg.DBPath, "db-path", "qpoll.sqlite", "path to SQLite3 DB file (default qpoll.sqlite)")
	flag.StringVar(&cfg.PublicDir, "public", "public", "directory of static web assets (default public)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
