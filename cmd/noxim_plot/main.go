package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/user/noxim_plot_go/internal/app"
	"github.com/user/noxim_plot_go/internal/config"
)

func main() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cmd := app.NewRootCommand(
		"noxim_plot",
		"Plot average delay and throughput of noxim output data",
		config.DelayAndThroughput,
		func() *app.App { return app.NewApp(logrus.StandardLogger(), nil) },
	)
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("noxim_plot failed")
	}
}
