package compressor

import (
	"context"
	"fmt"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"
)

// Strategy is one set of encoder options attempted against a video
type Strategy struct {
	Name    string
	Options []string
}

const (
	StrategyScaled  = "scaled"
	StrategyMinimal = "minimal"
	StrategyCopy    = "copy"
)

// scaledFilter fits landscape sources in 1280x720 and portrait sources in 720x1280,
// never upscales, then rounds to even dimensions for yuv420p.
const scaledFilter = "scale=w='if(gte(iw,ih),min(1280,iw),min(720,iw))'" +
	":h='if(gte(iw,ih),min(720,ih),min(1280,ih))'" +
	":force_original_aspect_ratio=decrease:flags=lanczos," +
	"scale=trunc(iw/2)*2:trunc(ih/2)*2"

// DefaultStrategies returns the chain in the order it is attempted
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name: StrategyScaled,
			Options: []string{
				"-map", "0:v:0",
				"-map", "0:a?",
				"-vf", scaledFilter,
				"-c:v", "libx264",
				"-preset", "medium",
				"-crf", "23",
				"-maxrate", "3M",
				"-bufsize", "6M",
				"-c:a", "aac",
				"-b:a", "128k",
				"-movflags", "+faststart",
				"-pix_fmt", "yuv420p",
			},
		},
		{
			Name: StrategyMinimal,
			Options: []string{
				"-c:v", "libx264",
				"-preset", "ultrafast",
				"-crf", "28",
				"-c:a", "copy",
				"-movflags", "+faststart",
			},
		},
		{
			Name:    StrategyCopy,
			Options: []string{"-c", "copy"},
		},
	}
}

// runChain tries each strategy once, in order, until one succeeds.
// A failed attempt leaves no output file behind.
func (c *mediaCompressor) runChain(ctx context.Context, job domain.TranscodeJob) (string, error) {
	var lastErr error

	for _, strategy := range c.strategies {
		attemptCtx, cancel := c.attemptContext(ctx)
		start := time.Now()
		err := c.runner.Transcode(attemptCtx, job.SourcePath, job.TargetPath, strategy.Options)
		cancel()
		elapsed := time.Since(start)

		c.metrics.ObserveStrategy(strategy.Name, err == nil, elapsed)
		if err == nil {
			c.logger.Info("video transcoded", "strategy", strategy.Name, "duration", elapsed)
			return strategy.Name, nil
		}

		c.logger.Warn("transcode strategy failed", "strategy", strategy.Name, "duration", elapsed, "error", err)
		c.removeTemp(job.TargetPath)
		lastErr = fmt.Errorf("strategy %s: %w", strategy.Name, err)
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no strategy configured")
	}
	return "", fmt.Errorf("%w: %w", domain.ErrTranscodeFailed, lastErr)
}

func (c *mediaCompressor) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.StrategyTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.StrategyTimeout)
}
