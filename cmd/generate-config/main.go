package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"pokerrl/internal/config"
)

var output = flag.String("o", "", "write the configuration to this file instead of stdout")

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			logrus.WithError(err).Fatal("could not create output file")
		}
		defer file.Close()
		w = file
	}

	if err := write(w, config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not write configuration")
	}
}

func write(w io.Writer, cfg config.Config) error {
	if _, err := cfg.ToRules(); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(cfg)
}
