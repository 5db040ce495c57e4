package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns an envelope to new transactions whose opposing
// account name matches the glob pattern.
type MatchRule struct {
	DefaultModel
	Priority   uint   // Lower number, higher priority
	Match      string // Glob pattern matched against the account name
	EnvelopeID uuid.UUID
	Envelope   Envelope `json:"-"`
}

var ErrMatchRuleNoMatch = errors.New("the match for a match rule must be set")

func (r *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*MatchRule)
	return r.checkIntegrity(tx, *toSave)
}

func (r *MatchRule) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(MatchRule)

	if tx.Statement.Changed("EnvelopeID") {
		err := r.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the envelope the rule references exists.
func (r *MatchRule) checkIntegrity(tx *gorm.DB, toSave MatchRule) error {
	return tx.First(&Envelope{}, toSave.EnvelopeID).Error
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Match == "" {
		return ErrMatchRuleNoMatch
	}

	return nil
}

// MatchEnvelope returns the ID of the envelope the first matching rule
// references, nil when no rule matches the account name.
func MatchEnvelope(db *gorm.DB, accountName string) (*uuid.UUID, error) {
	var rules []MatchRule

	err := db.Order("priority ASC, match ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, accountName) {
			id := rule.EnvelopeID
			return &id, nil
		}
	}

	return nil, nil
}
