package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	LFJSON LogFormat = "json"
	LFText LogFormat = "text"
)

func NewConfig(fileName string) (Config, error) {
	c := Config{}

	b, err := os.ReadFile(fileName)
	if err != nil {
		return c, fmt.Errorf("unable to open %q, reason: %w", fileName, err)
	}

	_, err = toml.Decode(string(b), &c)
	if err != nil {
		return c, fmt.Errorf("unable to unmarshal %q, reason: %w", fileName, err)
	}

	return c, nil
}

// Config holds central config parameters
type Config struct {
	Client struct {
		InputLengthMax int64 `toml:"inputLengthMax"`
	} `toml:"client"`
	Server struct {
		ListenOn        string `toml:"listenOn"`
		ConnectionLimit uint   `toml:"connectionLimit"`
		PathStrip       string `toml:"pathStrip"`
		CORS            struct {
			AllowedOrigins []string `toml:"allowedOrigins"`
			AllowedHeaders []string `toml:"allowedHeaders"`
		} `toml:"CORS"`
		Headers []Header `toml:"headers"`
		Log     struct {
			Level  string    `toml:"level"`
			Format LogFormat `toml:"format"`
		} `toml:"log"`
		Hash struct {
			Key string `toml:"key"`
		} `toml:"hash"`
		Profiler struct {
			Enable bool   `toml:"enable"`
			Prefix string `toml:"prefix"`
		} `toml:"profiler"`
		GraphQL struct {
			PrettyOutput bool `toml:"prettyOutput"`
			GraphiQL     bool `toml:"graphiQL"`
		} `toml:"graphql"`
		RateLimiter struct {
			Rate     int64    `toml:"rate"`
			Capacity int64    `toml:"capacity"`
			MaxDelay Duration `toml:"maxDelay"`
		} `toml:"rateLimiter"`
	} `toml:"server"`
	Validator struct {
		Resolver        string `toml:"resolver"`
		Timeout         string `toml:"timeout"`
		CheckDisposable bool   `toml:"checkDisposable"`
		ExtraDisposable []string `toml:"extraDisposable"`
	} `toml:"validator"`
	Cache struct {
		Enabled            bool     `toml:"enabled"`
		TTL                Duration `toml:"ttl"`
		MaxSize            int      `toml:"maxSize"`
		CleanupEnabled     bool     `toml:"cleanupEnabled"`
		CleanupProbability float64  `toml:"cleanupProbability"`
	} `toml:"cache"`
}

type Header struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

type Duration struct {
	duration time.Duration
}

func (d Duration) String() string {
	return d.duration.String()
}

func (d *Duration) Set(v string) error {
	var err error
	d.duration, err = time.ParseDuration(v)
	return err
}

func (d Duration) AsDuration() time.Duration {
	return d.duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.duration, err = time.ParseDuration(string(text))
	return err
}

type LogFormat string

func (lf LogFormat) String() string {
	return string(lf)
}

func (lf *LogFormat) UnmarshalText(value []byte) error {
	validTypes := []string{string(LFJSON), string(LFText)}
	v := string(value)
	for _, t := range validTypes {
		if t == v {
			*lf = LogFormat(v)
			return nil
		}
	}

	expected := strings.Join(validTypes, ", ")
	return fmt.Errorf("unsupported value %q for log format. Expected one of: %q", value, expected)
}
