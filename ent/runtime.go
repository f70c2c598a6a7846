// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/attemptevent"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/llmrequestevent"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/progress"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[1].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescSlug is the schema descriptor for slug field.
	attempteventDescSlug := attempteventFields[2].Descriptor()
	// attemptevent.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	attemptevent.SlugValidator = attempteventDescSlug.Validators[0].(func(string) error)
	// attempteventDescKataType is the schema descriptor for kata_type field.
	attempteventDescKataType := attempteventFields[3].Descriptor()
	// attemptevent.KataTypeValidator is a validator for the "kata_type" field. It is called by the builders before save.
	attemptevent.KataTypeValidator = attempteventDescKataType.Validators[0].(func(string) error)
	// attempteventDescUngraded is the schema descriptor for ungraded field.
	attempteventDescUngraded := attempteventFields[6].Descriptor()
	// attemptevent.DefaultUngraded holds the default value on creation for the ungraded field.
	attemptevent.DefaultUngraded = attempteventDescUngraded.Default.(bool)
	// attempteventDescDurationMs is the schema descriptor for duration_ms field.
	attempteventDescDurationMs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	attemptevent.DefaultDurationMs = attempteventDescDurationMs.Default.(int64)
	// attempteventDescMessage is the schema descriptor for message field.
	attempteventDescMessage := attempteventFields[8].Descriptor()
	// attemptevent.DefaultMessage holds the default value on creation for the message field.
	attemptevent.DefaultMessage = attempteventDescMessage.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescSlug is the schema descriptor for slug field.
	progressDescSlug := progressFields[0].Descriptor()
	// progress.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	progress.SlugValidator = progressDescSlug.Validators[0].(func(string) error)
	// progressDescBestScore is the schema descriptor for best_score field.
	progressDescBestScore := progressFields[1].Descriptor()
	// progress.DefaultBestScore holds the default value on creation for the best_score field.
	progress.DefaultBestScore = progressDescBestScore.Default.(float64)
	// progressDescLastScore is the schema descriptor for last_score field.
	progressDescLastScore := progressFields[2].Descriptor()
	// progress.DefaultLastScore holds the default value on creation for the last_score field.
	progress.DefaultLastScore = progressDescLastScore.Default.(float64)
	// progressDescAttempts is the schema descriptor for attempts field.
	progressDescAttempts := progressFields[3].Descriptor()
	// progress.DefaultAttempts holds the default value on creation for the attempts field.
	progress.DefaultAttempts = progressDescAttempts.Default.(int)
	// progressDescCompleted is the schema descriptor for completed field.
	progressDescCompleted := progressFields[4].Descriptor()
	// progress.DefaultCompleted holds the default value on creation for the completed field.
	progress.DefaultCompleted = progressDescCompleted.Default.(bool)
	// progressDescLastAttemptAt is the schema descriptor for last_attempt_at field.
	progressDescLastAttemptAt := progressFields[5].Descriptor()
	// progress.DefaultLastAttemptAt holds the default value on creation for the last_attempt_at field.
	progress.DefaultLastAttemptAt = progressDescLastAttemptAt.Default.(func() time.Time)
	// progress.UpdateDefaultLastAttemptAt holds the default value on update for the last_attempt_at field.
	progress.UpdateDefaultLastAttemptAt = progressDescLastAttemptAt.UpdateDefault.(func() time.Time)
}
