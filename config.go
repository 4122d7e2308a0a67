package qml

import "time"

type Config struct {
	Workers     int
	EvalTimeout time.Duration
}

func NewConfig() *Config {
	return &Config{
		Workers: 1,
	}
}
