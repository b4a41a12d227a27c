package domain

import (
	"fmt"
	"strings"
)

type PersonalityID string

// GenerationParams are forwarded verbatim on every completion request made
// on behalf of a personality.
type GenerationParams struct {
	Temperature      float64
	PresencePenalty  float64
	FrequencyPenalty float64
}

type Personality struct {
	ID        PersonalityID
	Name      string
	Backstory string
	Summary   string
	Verbose   bool
	Params    GenerationParams
}

func (p Personality) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if p.Params.Temperature < 0 || p.Params.Temperature > 2 {
		return fmt.Errorf("temperature %v out of range [0, 2]", p.Params.Temperature)
	}
	if p.Params.PresencePenalty < -2 || p.Params.PresencePenalty > 2 {
		return fmt.Errorf("presence penalty %v out of range [-2, 2]", p.Params.PresencePenalty)
	}
	if p.Params.FrequencyPenalty < -2 || p.Params.FrequencyPenalty > 2 {
		return fmt.Errorf("frequency penalty %v out of range [-2, 2]", p.Params.FrequencyPenalty)
	}

	return nil
}

func (p *Personality) Normalize() {
	if p == nil {
		return
	}

	p.ID = PersonalityID(strings.TrimSpace(string(p.ID)))
	p.Name = strings.TrimSpace(p.Name)
	p.Backstory = strings.TrimSpace(p.Backstory)
	p.Summary = strings.TrimSpace(p.Summary)
}
