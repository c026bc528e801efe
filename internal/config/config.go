package config

import (
	"encoding"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/eduteams/eduteams-cli/internal/config/types"
	"go.yaml.in/yaml/v3"
)

const envPrefix = "EDUTEAMS_"

// legacyEnvironmentVariables are accepted in addition to the derived names.
//
//nolint:gochecknoglobals
var legacyEnvironmentVariables = map[string]string{
	"oidc.issuer":    "EDUTEAMS_ISS",
	"oidc.client-id": "EDUTEAMS_CLIENT_ID",
	"oidc.scope":     "EDUTEAMS_SCOPE",
}

// New loads the configuration from configuration files, environment variables, command line arguments
// and positional arguments in that order.
//
//goland:noinspection GoMixedReceiverTypes
func New(args []string, writer io.Writer) (Config, error) {
	config := Defaults

	if configFilePath := lookupConfigArgument(args); configFilePath != "" {
		if err := config.ReadFromConfigFile(configFilePath); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	}

	if err := config.ReadFromFlagAndEnvironment(args, writer); err != nil {
		return Config{}, err
	}

	return config, nil
}

// ReadFromConfigFile reads the configuration from a configuration file.
//
//goland:noinspection GoMixedReceiverTypes
func (c *Config) ReadFromConfigFile(configFilePath string) error {
	configFile, err := os.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("error opening config file %s: %w", configFilePath, err)
	}

	defer func() {
		_ = configFile.Close()
	}()

	decoder := yaml.NewDecoder(configFile)
	decoder.KnownFields(true)

	if err = decoder.Decode(c); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", configFilePath, err)
	}

	c.ConfigFile = configFilePath

	return nil
}

// ReadFromFlagAndEnvironment reads the configuration from command line arguments and environment variables.
// Up to three positional arguments override issuer, client id and scope.
//
//goland:noinspection GoMixedReceiverTypes
func (c *Config) ReadFromFlagAndEnvironment(args []string, writer io.Writer) error {
	flagSet := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flagSet.SetOutput(writer)
	flagSet.Usage = func() {
		_, _ = fmt.Fprintf(flagSet.Output(), "Usage of %s:\n\n", flagSet.Name())
		_, _ = fmt.Fprintf(flagSet.Output(), "  %s [login] [flags] [ISSUER [CLIENT_ID [SCOPE]]]\n\n", flagSet.Name())
		// --help should display options with double dash
		flagSet.VisitAll(func(flag *flag.Flag) {
			flag.Name = "-" + flag.Name
		})
		flagSet.PrintDefaults()
	}

	flagSet.String(
		"config",
		c.ConfigFile,
		"path to one .yaml config file",
	)

	flagSet.Bool(
		"version",
		false,
		"show version",
	)

	c.flagSetLog(flagSet)
	c.flagSetOIDC(flagSet)
	c.flagSetHTTP(flagSet)
	c.flagSetOutput(flagSet)

	flagSet.VisitAll(func(flag *flag.Flag) {
		if flag.Name == "version" || flag.Name == "config" {
			return
		}

		flag.Usage += fmt.Sprintf(" (env: %s)", getEnvironmentVariableByFlagName(flag.Name))
	})

	if err := flagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("error parsing command line arguments: %w", err)
	}

	if flagSet.Lookup("version").Value.String() == "true" {
		return ErrVersion
	}

	return c.readPositionalArguments(flagSet.Args())
}

//goland:noinspection GoMixedReceiverTypes
func (c *Config) readPositionalArguments(args []string) error {
	if len(args) > 3 {
		return fmt.Errorf("%w: %s", ErrTooManyArguments, strings.Join(args[3:], " "))
	}

	if len(args) > 0 {
		if err := c.OIDC.Issuer.UnmarshalText([]byte(args[0])); err != nil {
			return fmt.Errorf("error parsing issuer argument: %w", err)
		}
	}

	if len(args) > 1 {
		c.OIDC.ClientID = args[1]
	}

	if len(args) > 2 {
		c.OIDC.Scope = types.NewScopes(args[2])
	}

	return nil
}

func lookupConfigArgument(args []string) string {
	configFile := ""

	for i, arg := range args {
		if !strings.HasPrefix(arg, "--config") && !strings.HasPrefix(arg, "-config") {
			continue
		}

		if _, value, ok := strings.Cut(arg, "="); ok {
			configFile = value

			break
		}

		// check if the argument is --config without value and look for the next argument
		if len(args) > i+1 {
			configFile = args[i+1]

			break
		}
	}

	if configFile == "" {
		configFile = os.Getenv(envPrefix + "CONFIG")
	}

	return configFile
}

// lookupEnvOrDefault looks up the environment variable by the flag name and returns the value.
// If the environment variable is not set, it returns the default value.
// It supports the following types: string, bool, int, [time.Duration] and [encoding.TextUnmarshaler].
// If the type is not supported, it panics.
//
//nolint:cyclop
func lookupEnvOrDefault[T any](key string, defaultValue T) T {
	envValue, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}

	switch any(defaultValue).(type) {
	case string:
		return any(envValue).(T) //nolint:forcetypeassert
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return defaultValue
		}

		return any(boolValue).(T) //nolint:forcetypeassert
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return defaultValue
		}

		return any(intValue).(T) //nolint:forcetypeassert
	case time.Duration:
		duration, err := time.ParseDuration(envValue)
		if err != nil {
			return defaultValue
		}

		return any(duration).(T) //nolint:forcetypeassert
	default:
		value := defaultValue
		if unmarshaler, ok := any(&value).(encoding.TextUnmarshaler); ok {
			if err := unmarshaler.UnmarshalText([]byte(envValue)); err != nil {
				return defaultValue
			}

			return value
		}

		// If the type is not supported, panic
		panic(fmt.Sprintf("unsupported type %T for environment variable %s", defaultValue, key))
	}
}

func lookupEnv(flagName string) (string, bool) {
	if value, ok := os.LookupEnv(getEnvironmentVariableByFlagName(flagName)); ok {
		return value, true
	}

	if legacyName, ok := legacyEnvironmentVariables[flagName]; ok {
		return os.LookupEnv(legacyName)
	}

	return "", false
}

// getEnvironmentVariableByFlagName converts a flag name to an environment variable name.
// It replaces all dots with underscores and all dashes with double underscores.
// It also converts the flag name to uppercase.
func getEnvironmentVariableByFlagName(flagName string) string {
	return envPrefix + strings.ReplaceAll(strings.ReplaceAll(strings.ToUpper(flagName), ".", "_"), "-", "__")
}
