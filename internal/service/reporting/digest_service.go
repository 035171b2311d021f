package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/feedlot/internal/repository/mongodb"
	"github.com/mamadbah2/feedlot/pkg/clients/anthropic"
)

const dateLayout = "2006-01-02"

// Service builds daily performance digests over the active fattening
// episodes. When an AI client is configured the raw digest is rewritten into
// a short farmer-friendly advisory; otherwise the raw digest is sent as-is.
type Service struct {
	animals mongodb.AnimalStore
	ai      anthropic.Client
	logger  *zap.Logger
}

// NewService wires a new digest service instance. The ai client may be nil.
func NewService(animals mongodb.AnimalStore, ai anthropic.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{animals: animals, ai: ai, logger: logger}
}

// GenerateDailyDigest summarizes every active episode: elapsed days, latest
// weight, actual vs target daily gain, accumulated feed cost and the
// cost-based conversion ratio.
func (s *Service) GenerateDailyDigest(ctx context.Context, now time.Time) (string, error) {
	animals, err := s.animals.ListAnimalsWithActiveEpisodes(ctx)
	if err != nil {
		return "", fmt.Errorf("load active episodes: %w", err)
	}

	if len(animals) == 0 {
		return fmt.Sprintf("Fattening digest %s: no active episodes.", now.Format(dateLayout)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Fattening digest %s (%d active):\n", now.Format(dateLayout), len(animals))

	for _, animal := range animals {
		idx := animal.ActiveEpisode()
		if idx < 0 {
			continue
		}
		ep := animal.Episodes[idx]

		day := int(now.Sub(ep.StartDate).Hours()/24) + 1
		line := fmt.Sprintf("- %s day %d/%d", animal.TagID, day, ep.DurationDays)

		if last := ep.LatestObservation(); last != nil {
			line += fmt.Sprintf(": %.1f kg, ADG %.2f (target %.2f), feed cost %.0f, cost/kg gain %.0f",
				last.Weight, ep.ActualADG, ep.DailyGainTarget, ep.TotalFeedCost, ep.FeedConversionRatio)
		} else {
			line += ": no weighing recorded yet"
		}

		b.WriteString(line + "\n")
	}

	digest := strings.TrimRight(b.String(), "\n")

	if s.ai == nil {
		return digest, nil
	}

	advisory, err := s.ai.ComposeAdvisory(ctx, digest)
	if err != nil {
		s.logger.Warn("advisory rewrite failed, falling back to raw digest", zap.Error(err))
		return digest, nil
	}
	return advisory, nil
}
