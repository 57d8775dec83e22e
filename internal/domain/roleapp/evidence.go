package roleapp

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
)

// EvidenceItem is owned by exactly one Application and mutated only
// through the Application's methods.
type EvidenceItem struct {
	ID               uuid.UUID
	Method           EvidenceMethod
	Status           EvidenceStatus
	SubmittedAt      *time.Time
	VerifiedAt       *time.Time
	ReviewedByUserID *uuid.UUID
	ReviewNote       *string

	// officialEmail
	EmailHint *string
	URL       *string

	// codePost
	ChannelURL       *string
	VerificationCode *string
}

// EvidenceInput is the applicant-supplied part of an evidence item.
type EvidenceInput struct {
	Method     EvidenceMethod
	EmailHint  *string
	URL        *string
	ChannelURL *string
}

func (in EvidenceInput) validate() error {
	if !in.Method.IsValid() {
		return ErrInvalidEvidenceMethod
	}
	switch in.Method {
	case MethodOfficialEmail:
		if in.EmailHint == nil || *in.EmailHint == "" || in.URL == nil || *in.URL == "" {
			return ErrEvidenceFieldsMissing
		}
	case MethodCodePost:
		if in.ChannelURL == nil || *in.ChannelURL == "" {
			return ErrEvidenceFieldsMissing
		}
	}
	return nil
}

// CodeGenerator produces the verification codes an applicant must post
// publicly for the codePost method. Injected so tests stay deterministic.
type CodeGenerator interface {
	Generate() string
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() CodeGenerator {
	return &RandomCodeGenerator{}
}

// Generate returns an 8 character code from an alphabet without
// lookalike characters.
func (g *RandomCodeGenerator) Generate() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure leaves no safe fallback for a public code
		panic("code generation failed: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}

type FixedCodeGenerator struct {
	Code string
}

func (g *FixedCodeGenerator) Generate() string {
	return g.Code
}
