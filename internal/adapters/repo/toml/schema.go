package toml

import "fmt"

const currentSchemaVersion = 1

type versioned interface {
	applyDefaults()
	validateVersion() error
}

type personalitiesFileSchema struct {
	Version       int                 `toml:"version"`
	Personalities []personalitySchema `toml:"personalities"`
}

func (s *personalitiesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s *personalitiesFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported personalities schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type personalitySchema struct {
	ID        string       `toml:"id"`
	Name      string       `toml:"name"`
	Summary   string       `toml:"summary,omitempty"`
	Backstory string       `toml:"backstory,omitempty"`
	Verbose   bool         `toml:"verbose,omitempty"`
	Params    paramsSchema `toml:"params"`
}

type paramsSchema struct {
	Temperature      float64 `toml:"temperature"`
	PresencePenalty  float64 `toml:"presence_penalty"`
	FrequencyPenalty float64 `toml:"frequency_penalty"`
}

type conversationsFileSchema struct {
	Version       int                  `toml:"version"`
	Conversations []conversationSchema `toml:"conversations"`
}

func (s *conversationsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s *conversationsFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported conversations schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type conversationSchema struct {
	PersonalityID string          `toml:"personality_id"`
	Messages      []messageSchema `toml:"messages"`
}

type messageSchema struct {
	Role    string `toml:"role"`
	Content string `toml:"content"`
}
