//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

// SpyReporterRepository implements repositories.ReporterRepository and records every call.
type SpyReporterRepository struct {
	Infos     []string
	Successes []string
	Debugs    []string
	Errors    []string

	ShowProgressCount int
	Ratios            []float64
	URLs              []string
	FinishCount       int
}

var _ repositories.ReporterRepository = (*SpyReporterRepository)(nil)

func (s *SpyReporterRepository) Info(msg string)    { s.Infos = append(s.Infos, msg) }
func (s *SpyReporterRepository) Success(msg string) { s.Successes = append(s.Successes, msg) }
func (s *SpyReporterRepository) Debug(msg string)   { s.Debugs = append(s.Debugs, msg) }
func (s *SpyReporterRepository) Error(msg string)   { s.Errors = append(s.Errors, msg) }

func (s *SpyReporterRepository) ShowProgress() {
	s.ShowProgressCount++
	s.Ratios = nil
}

func (s *SpyReporterRepository) SetProgress(ratio float64) { s.Ratios = append(s.Ratios, ratio) }
func (s *SpyReporterRepository) ShowURL(url string)        { s.URLs = append(s.URLs, url) }
func (s *SpyReporterRepository) Finish()                   { s.FinishCount++ }
