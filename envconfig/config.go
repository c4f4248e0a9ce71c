package envconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// Set via CLPEEK_DEBUG in the environment
	Debug bool
	// Set via CLPEEK_HOST in the environment
	Host string
	// Set via CLPEEK_ORIGINS in the environment
	AllowOrigins []string
)

const DefaultHost = "127.0.0.1:11501"

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"CLPEEK_DEBUG":   {"CLPEEK_DEBUG", Debug, "Show additional debug information (e.g. CLPEEK_DEBUG=1)"},
		"CLPEEK_HOST":    {"CLPEEK_HOST", Host, fmt.Sprintf("Address for the clpeek server (default %s)", DefaultHost)},
		"CLPEEK_ORIGINS": {"CLPEEK_ORIGINS", AllowOrigins, "A comma separated list of allowed origins"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

var defaultAllowOrigins = []string{
	"localhost",
	"127.0.0.1",
	"0.0.0.0",
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	if debug := clean("CLPEEK_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	Host = clean("CLPEEK_HOST")
	if Host == "" {
		Host = DefaultHost
	}

	AllowOrigins = nil
	if origins := clean("CLPEEK_ORIGINS"); origins != "" {
		AllowOrigins = strings.Split(origins, ",")
	}
	for _, origin := range defaultAllowOrigins {
		AllowOrigins = append(AllowOrigins,
			fmt.Sprintf("http://%s", origin),
			fmt.Sprintf("https://%s", origin),
		)
	}
}
