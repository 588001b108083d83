package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/podreport/internal"
	"github.com/rios0rios0/podreport/internal/infrastructure/controllers"
)

func injectReportController() *controllers.ReportController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var reportController *controllers.ReportController
	if err := container.Invoke(func(rc *controllers.ReportController) {
		reportController = rc
	}); err != nil {
		panic(err)
	}

	return reportController
}
