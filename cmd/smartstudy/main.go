// Command smartstudy plans exam revision from subjects, topics and exam dates.
package main

import (
	"fmt"
	"os"

	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driven/config/file"
	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driven/storage/sqlite"
	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/cli"
	"github.com/Nikhil-4404/ai-exam-planner/internal/connectors/filesystem"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/services"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers/docx"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers/html"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers/markdown"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers/pdf"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers/plaintext"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the core services.
func bootstrap(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	subjects := store.SubjectStore()

	registry := services.NewNormaliserRegistry(
		pdf.New(),
		docx.New(),
		html.New(),
		markdown.New(),
		plaintext.New(),
	)

	planner := services.NewPlanner()

	return &cli.Services{
		Subjects: services.NewSubjectService(subjects),
		Plans:    services.NewPlanService(subjects, planner, nil),
		Syllabus: services.NewSyllabusService(registry),
		Settings: settingsService,
		Planner:  planner,
		OpenSource: func(dir string) driven.SyllabusSource {
			return filesystem.New(dir)
		},
		Close: store.Close,
	}, nil
}
