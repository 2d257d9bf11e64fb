// Package articles analyses a directory of Markdown articles and generates
// an index of them. Module wires the statistics job, the index job and
// their command handlers from a Config.
package articles

import (
	"github.com/goliatone/go-articles/internal/analysis"
	analyzecmd "github.com/goliatone/go-articles/internal/commands/analyze"
	indexcmd "github.com/goliatone/go-articles/internal/commands/index"
	"github.com/goliatone/go-articles/internal/di"
	"github.com/goliatone/go-articles/internal/index"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// AnalysisService exports the statistics job.
type AnalysisService = *analysis.Service

// IndexService exports the index job.
type IndexService = *index.Service

// Stats exports the aggregated statistics document.
type Stats = analysis.Stats

// IndexResult exports the outcome of an index run.
type IndexResult = index.Result

// AnalyzeDirectoryCommand exports the statistics command message.
type AnalyzeDirectoryCommand = analyzecmd.AnalyzeDirectoryCommand

// GenerateIndexCommand exports the index command message.
type GenerateIndexCommand = indexcmd.GenerateIndexCommand

// ErrDirectoryNotFound is returned by both jobs when the article directory
// is missing.
var ErrDirectoryNotFound = analysis.ErrDirectoryNotFound

// Module is the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a Module using cfg and optional container overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the validated configuration the module was built with.
func (m *Module) Config() Config {
	return m.container.Config
}

// Analysis returns the statistics job.
func (m *Module) Analysis() AnalysisService {
	return m.container.AnalysisService()
}

// Index returns the index job.
func (m *Module) Index() IndexService {
	return m.container.IndexService()
}

// LoggerProvider returns the active logger provider.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.container.LoggerProvider()
}

// AnalyzeHandler returns the statistics command handler.
func (m *Module) AnalyzeHandler() *analyzecmd.AnalyzeDirectoryHandler {
	return m.container.AnalyzeHandler()
}

// IndexHandler returns the index command handler.
func (m *Module) IndexHandler() *indexcmd.GenerateIndexHandler {
	return m.container.IndexHandler()
}
