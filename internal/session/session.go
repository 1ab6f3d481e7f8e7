// Package session mutates identification records through the gateway:
// chat exchanges, growth-timeline updates and tool results are appended
// to a record and committed to the history store as whole-record
// replacements. A canceled operation is never half-committed; the
// context is checked once more after the model answers and before the
// store write.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"verdant/internal/gateway"
	"verdant/internal/logging"
	"verdant/internal/types"
)

// Analyzer is the gateway surface the session layer needs.
type Analyzer interface {
	Chat(ctx context.Context, plant *types.Identification, message string, lang types.Language) (string, error)
	CompareGrowth(ctx context.Context, oldImage, newImage string, lang types.Language) (gateway.GrowthReport, error)
	AnalyzeTool(ctx context.Context, imageDataURL string, tool types.ToolDefinition, lang types.Language) (types.ToolResult, error)
}

// Recorder commits updated records.
type Recorder interface {
	Replace(ctx context.Context, rec *types.Identification) error
}

// Session augments one identification record.
type Session struct {
	record   *types.Identification
	analyzer Analyzer
	recorder Recorder
	log      *zap.Logger
}

// New builds a session around rec. The record is mutated in place as
// operations complete.
func New(rec *types.Identification, analyzer Analyzer, recorder Recorder) *Session {
	return &Session{
		record:   rec,
		analyzer: analyzer,
		recorder: recorder,
		log:      logging.Named(logging.CategorySession),
	}
}

// Record returns the record under augmentation.
func (s *Session) Record() *types.Identification {
	return s.record
}

// Send asks the botanist one question. On success the user/model pair
// is appended to the record's chat history and committed, growing it by
// exactly two turns.
func (s *Session) Send(ctx context.Context, message string) (string, error) {
	reply, err := s.analyzer.Chat(ctx, s.record, message, s.record.Language)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	now := time.Now().UnixMilli()
	s.record.AppendChatExchange(
		types.ChatTurn{Role: types.RoleUser, Text: message, Timestamp: now},
		types.ChatTurn{Role: types.RoleModel, Text: reply, Timestamp: now},
	)
	if err := s.recorder.Replace(ctx, s.record); err != nil {
		return "", err
	}

	s.log.Debug("chat exchange committed",
		zap.String("id", s.record.ID),
		zap.Int("turns", len(s.record.ChatHistory)))
	return reply, nil
}

// AddGrowthUpdate compares the plant's most recent photo against a new
// one and appends the result to the growth timeline. The new photo
// becomes the latest image for the next comparison.
func (s *Session) AddGrowthUpdate(ctx context.Context, newImageDataURL string) (types.TimelineUpdate, error) {
	report, err := s.analyzer.CompareGrowth(ctx, s.record.LatestImage(), newImageDataURL, s.record.Language)
	if err != nil {
		return types.TimelineUpdate{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.TimelineUpdate{}, err
	}

	update := types.TimelineUpdate{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UnixMilli(),
		ImageRef:       newImageDataURL,
		GrowthAnalysis: report.Analysis,
		HealthStatus:   report.Status,
	}
	s.record.AppendUpdate(update)
	if err := s.recorder.Replace(ctx, s.record); err != nil {
		return types.TimelineUpdate{}, err
	}

	s.log.Info("growth update committed",
		zap.String("id", s.record.ID),
		zap.String("status", update.HealthStatus))
	return update, nil
}

// RunTool analyzes a photo with a specialist tool and appends the
// result to the record's tool history.
func (s *Session) RunTool(ctx context.Context, tool types.ToolDefinition, imageDataURL string) (types.ToolResult, error) {
	result, err := s.analyzer.AnalyzeTool(ctx, imageDataURL, tool, s.record.Language)
	if err != nil {
		return types.ToolResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.ToolResult{}, err
	}

	s.record.AppendToolResult(result)
	if err := s.recorder.Replace(ctx, s.record); err != nil {
		return types.ToolResult{}, err
	}
	return result, nil
}
