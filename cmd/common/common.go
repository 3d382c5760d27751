/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting the default log level.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the default log level.
	LogLevelEnvKey = "VNF_WALLET_LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the default log level.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Sets logging levels for individual modules as well as the default level. " +
		"The format of the string is as follows: module1=level1:module2=level2:defaultLevel. " +
		"Supported levels are: ERROR, WARNING, INFO, DEBUG. " +
		"Example: offers=DEBUG:did-resolver=WARN:INFO. " +
		"Defaults to error if not set. Alternatively, this can be set with the following environment variable: " +
		LogLevelEnvKey
)

// SetLogLevel applies a module level spec. An invalid spec leaves every module at ERROR.
func SetLogLevel(logger *log.Log, spec string) {
	if spec == "" {
		log.SetLevel("", log.ERROR)

		return
	}

	levels, err := parseLevelSpec(spec)
	if err != nil {
		logger.Warn("Invalid log level spec. It must be one of the following: "+
			log.ERROR.String()+", "+
			log.WARNING.String()+", "+
			log.INFO.String()+", "+
			log.DEBUG.String()+". Defaulting to error.",
			logfields.WithUserLogLevel(spec), log.WithError(err))

		log.SetLevel("", log.ERROR)

		return
	}

	for module, level := range levels {
		log.SetLevel(module, level)
	}

	if log.GetLevel("") == log.DEBUG {
		logger.Info(`Log level set to "debug". Output may contain request URLs and DIDs.`)
	}
}

// parseLevelSpec parses "module1=level1:module2=level2:defaultLevel". The default module is keyed by "".
func parseLevelSpec(spec string) (map[string]log.Level, error) {
	levels := make(map[string]log.Level)

	for _, entry := range strings.Split(spec, ":") {
		module, value, found := strings.Cut(entry, "=")
		if !found {
			module, value = "", entry
		}

		if found && strings.TrimSpace(module) == "" {
			return nil, fmt.Errorf("missing module name in %q", entry)
		}

		level, err := log.ParseLevel(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("parse level %q: %w", value, err)
		}

		levels[strings.TrimSpace(module)] = level
	}

	return levels, nil
}
