// Package cli implements the smartstudy command line.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driving"
	"github.com/Nikhil-4404/ai-exam-planner/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services bundles the ports the commands drive.
type Services struct {
	Subjects driving.SubjectService
	Plans    driving.PlanService
	Syllabus driving.SyllabusService
	Settings driving.SettingsService
	Planner  driving.Planner

	// OpenSource returns a syllabus source rooted at dir.
	OpenSource func(dir string) driven.SyllabusSource

	// Close releases whatever the services hold open. May be nil.
	Close func() error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	services  *Services
	bootstrap Bootstrap

	verbose   bool
	configDir string
)

// skipServicesAnnotation marks commands that run without services.
const skipServicesAnnotation = "skip-services"

var rootCmd = &cobra.Command{
	Use:   "smartstudy",
	Short: "Plan exam revision from your syllabus",
	Long: `smartstudy turns a list of subjects, topics and exam dates into a
daily study plan. Topics are ranked by an urgency score that grows with
weightage and difficulty and rises as the exam approaches.

Syllabus documents (PDF, DOCX, HTML, Markdown, plain text) can be scanned
for candidate topics, reviewed and imported into a subject.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.smartstudy)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services at startup.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs ready-made services, bypassing the bootstrap.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if services != nil && services.Close != nil {
		if closeErr := services.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[skipServicesAnnotation] == "true" || services != nil || bootstrap == nil {
		return nil
	}

	s, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	services = s
	return nil
}

var errNotConfigured = errors.New("services not configured")

func requireServices() (*Services, error) {
	if services == nil {
		return nil, errNotConfigured
	}
	return services, nil
}
