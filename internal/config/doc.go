// Package config provides configuration structures and utilities for
// pagelint. It defines the options controlling which checks run, how
// reports are written, and per-site defaults loaded from the .pagelint
// configuration file.
package config
