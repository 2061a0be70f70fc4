/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package store holds the current project and applies validated mutations.
//
// Every mutation copies the project, changes the copy and swaps it in, so a
// snapshot handed out earlier never changes underneath its reader.
package store

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"

	"bennypowers.dev/blueprint/internal/logger"
	"bennypowers.dev/blueprint/parser"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/typography"
	"bennypowers.dev/blueprint/validator"
)

// maxHintDistance bounds the edit distance of "did you mean" hints.
const maxHintDistance = 2

// Store is the container for the single active project.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *token.Project

	scale typography.ScaleConfig
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithScale sets the type scale given to new projects.
func WithScale(cfg typography.ScaleConfig) Option {
	return func(s *Store) { s.scale = cfg.WithDefaults() }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		scale: typography.DefaultScale(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateProject replaces the current project with a new empty one and
// returns a snapshot of it.
func (s *Store) CreateProject(name string) token.Project {
	now := s.now().UTC()
	scale := s.scale.Clone()
	p := token.Project{
		ID:     uuid.NewString(),
		Name:   name,
		Tokens: token.NewSet(),
		Typography: token.Typography{
			Scale:    scale,
			Headings: typography.DefaultHeadings(typography.GenerateScale(scale)),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &p
	logger.Debug("created project %s (%s)", p.Name, p.ID)
	return p.Clone()
}

// Open makes a copy of p the current project. Projects without an ID get one.
// Missing token records become empty records.
func (s *Store) Open(p token.Project) token.Project {
	p = p.Clone()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &p
	logger.Debug("opened project %s (%s)", p.Name, p.ID)
	return p.Clone()
}

// Snapshot returns a deep copy of the current project.
func (s *Store) Snapshot() (token.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return token.Project{}, ErrNoProject
	}
	return s.current.Clone(), nil
}

// List returns the tokens of category c sorted by name.
func (s *Store) List(c token.Category) []token.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.Tokens.Sorted(c)
}

// AddToken validates and adds a new token.
// It fails with duplicate_name when the name already exists in c.
func (s *Store) AddToken(c token.Category, name, value string) validator.Result {
	return s.mutate(func(p *token.Project) []validator.ValidationError {
		errs := checkPair(c, name, value)
		if _, exists := p.Tokens.Lookup(c, name); exists {
			errs = append(errs, duplicate(c, name))
		}
		if len(errs) > 0 {
			return errs
		}
		p.Tokens.Get(c)[name] = value
		logger.Debug("added %s token %s", c.Singular(), name)
		return nil
	})
}

// UpdateToken validates and replaces the value of an existing token.
// It fails with not_found when the name does not exist in c.
func (s *Store) UpdateToken(c token.Category, name, value string) validator.Result {
	return s.mutate(func(p *token.Project) []validator.ValidationError {
		errs := checkPair(c, name, value)
		if _, exists := p.Tokens.Lookup(c, name); !exists {
			errs = append(errs, notFound(c, name, p.Tokens.Names(c)))
		}
		if len(errs) > 0 {
			return errs
		}
		p.Tokens.Get(c)[name] = value
		logger.Debug("updated %s token %s", c.Singular(), name)
		return nil
	})
}

// DeleteToken removes a token. It fails with not_found when the name does not exist in c.
func (s *Store) DeleteToken(c token.Category, name string) validator.Result {
	return s.mutate(func(p *token.Project) []validator.ValidationError {
		if _, exists := p.Tokens.Lookup(c, name); !exists {
			return []validator.ValidationError{notFound(c, name, p.Tokens.Names(c))}
		}
		delete(p.Tokens.Get(c), name)
		logger.Debug("deleted %s token %s", c.Singular(), name)
		return nil
	})
}

// RenameToken moves the value of from to the new name to, keeping the value.
func (s *Store) RenameToken(c token.Category, from, to string) validator.Result {
	return s.mutate(func(p *token.Project) []validator.ValidationError {
		value, exists := p.Tokens.Lookup(c, from)
		if !exists {
			return []validator.ValidationError{notFound(c, from, p.Tokens.Names(c))}
		}
		if from == to {
			return nil
		}
		if err := validator.ValidateName(to); err != nil {
			return []validator.ValidationError{*err}
		}
		if _, taken := p.Tokens.Lookup(c, to); taken {
			return []validator.ValidationError{duplicate(c, to)}
		}
		record := p.Tokens.Get(c)
		delete(record, from)
		record[to] = value
		logger.Debug("renamed %s token %s to %s", c.Singular(), from, to)
		return nil
	})
}

// ImportBatch parses text and adds every accepted entry in one mutation.
// Parse errors and names that already exist are reported and nothing is
// written unless the batch parses cleanly and every name is new.
func (s *Store) ImportBatch(c token.Category, text string) (parser.BatchResult, validator.Result) {
	batch := parser.ParseBatch(c, text)
	result := s.mutate(func(p *token.Project) []validator.ValidationError {
		var errs []validator.ValidationError
		for _, l := range batch.Errors {
			errs = append(errs, l.Errors...)
		}
		for _, name := range slices.Sorted(maps.Keys(batch.Entries)) {
			if _, exists := p.Tokens.Lookup(c, name); exists {
				errs = append(errs, duplicate(c, name))
			}
		}
		if len(errs) > 0 {
			return errs
		}
		maps.Copy(p.Tokens.Get(c), batch.Entries)
		logger.Debug("imported %d %s tokens", len(batch.Entries), c.Singular())
		return nil
	})
	return batch, result
}

// ScalePatch holds the type scale fields to change. Nil fields are kept.
type ScalePatch struct {
	Base    *float64
	Ratio   *float64
	Presets *[]float64
}

// UpdateTypeScale merges patch into the current scale and regenerates the
// default headings map for the new steps.
func (s *Store) UpdateTypeScale(patch ScalePatch) (token.Typography, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return token.Typography{}, ErrNoProject
	}

	scale := s.current.Typography.Scale.Clone()
	if patch.Base != nil {
		scale.Base = *patch.Base
	}
	if patch.Ratio != nil {
		scale.Ratio = *patch.Ratio
	}
	if patch.Presets != nil {
		scale.Presets = append([]float64(nil), (*patch.Presets)...)
	}
	if err := scale.Validate(); err != nil {
		return token.Typography{}, fmt.Errorf("updating type scale: %w", err)
	}

	next := s.current.Clone()
	next.Typography = token.Typography{
		Scale:    scale,
		Headings: typography.DefaultHeadings(typography.GenerateScale(scale)),
	}
	next.UpdatedAt = s.now().UTC()
	s.current = &next
	logger.Debug("updated type scale: base=%v ratio=%v presets=%v", scale.Base, scale.Ratio, scale.Presets)
	return next.Typography.Clone(), nil
}

// SetHeadingsMap replaces the headings map when every level references an
// existing scale step.
func (s *Store) SetHeadingsMap(m typography.HeadingsMap) (typography.HeadingsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return typography.HeadingsResult{}, ErrNoProject
	}

	steps := typography.GenerateScale(s.current.Typography.Scale.WithDefaults())
	res := typography.ValidateHeadings(m, typography.StepNames(steps))
	if !res.OK {
		return res, nil
	}

	next := s.current.Clone()
	next.Typography.Headings = m.Clone()
	next.UpdatedAt = s.now().UTC()
	s.current = &next
	return res, nil
}

// mutate applies fn to a deep copy of the current project and swaps the
// copy in when fn reports no errors. fn may write to the copy's records.
func (s *Store) mutate(fn func(p *token.Project) []validator.ValidationError) validator.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return validator.Result{OK: false, Errors: []validator.ValidationError{{
			Code:     validator.CodeNotFound,
			Field:    validator.FieldGeneral,
			Message:  ErrNoProject.Error(),
			Severity: validator.SeverityError,
		}}}
	}

	next := s.current.Clone()
	if errs := fn(&next); len(errs) > 0 {
		return validator.Result{OK: false, Errors: errs}
	}
	next.UpdatedAt = s.now().UTC()
	s.current = &next
	return validator.Result{OK: true}
}

func checkPair(c token.Category, name, value string) []validator.ValidationError {
	var errs []validator.ValidationError
	if err := validator.ValidateName(name); err != nil {
		errs = append(errs, *err)
	}
	if err := validator.ValidateValue(c, value); err != nil {
		errs = append(errs, *err)
	}
	return errs
}

func duplicate(c token.Category, name string) validator.ValidationError {
	return validator.ValidationError{
		Code:     validator.CodeDuplicateName,
		Field:    validator.FieldName,
		Message:  fmt.Sprintf("A %s token named %s already exists", c.Singular(), name),
		Severity: validator.SeverityError,
		Details:  map[string]string{"name": name},
	}
}

func notFound(c token.Category, name string, existing []string) validator.ValidationError {
	err := validator.ValidationError{
		Code:     validator.CodeNotFound,
		Field:    validator.FieldName,
		Message:  fmt.Sprintf("No %s token named %s", c.Singular(), name),
		Severity: validator.SeverityError,
		Details:  map[string]string{"name": name},
	}
	if hint, ok := closest(name, existing); ok {
		err.Message += fmt.Sprintf(", did you mean %s?", hint)
		err.Details["suggestion"] = hint
	}
	return err
}

// closest returns the existing name nearest to name, if any is within
// maxHintDistance edits.
func closest(name string, existing []string) (string, bool) {
	if len(existing) == 0 {
		return "", false
	}
	best := lo.MinBy(existing, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	if levenshtein.Distance(name, best) > maxHintDistance {
		return "", false
	}
	return best, true
}
