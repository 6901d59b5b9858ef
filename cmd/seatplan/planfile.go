package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/tableplanner/internal/models"
)

// planFile is the on-disk layout read and written by seatplan.
type planFile struct {
	Name   string         `json:"name,omitempty" yaml:"name,omitempty"`
	Tables []models.Table `json:"tables" yaml:"tables"`
	Guests []models.Guest `json:"guests" yaml:"guests"`
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadPlan reads a YAML or JSON plan (chosen by extension) and fills in
// whatever a hand-written file may leave out.
func loadPlan(path string) (*planFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	var plan planFile
	if isJSON(path) {
		err = json.Unmarshal(data, &plan)
	} else {
		err = yaml.Unmarshal(data, &plan)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := plan.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &plan, nil
}

// normalize generates missing IDs, canonicalizes enum spellings, builds seat
// arrays from shape counts and resolves guestOf given as a guest name.
func (p *planFile) normalize() error {
	for i := range p.Tables {
		t := &p.Tables[i]
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		if t.Name == "" {
			t.Name = fmt.Sprintf("Table %d", i+1)
		}
		tt, err := models.ParseTableType(string(t.TableType))
		if err != nil {
			return fmt.Errorf("table %q: %w", t.Name, err)
		}
		t.TableType = tt
		t.BuildSeats()
	}

	byName := make(map[string][]string)
	ids := make(map[string]bool, len(p.Guests))
	for i := range p.Guests {
		g := &p.Guests[i]
		if g.ID == "" {
			g.ID = uuid.New().String()
		}
		ids[g.ID] = true
		byName[g.Name] = append(byName[g.Name], g.ID)

		for j, r := range g.DietaryRestrictions {
			d, err := models.ParseDietaryRestriction(string(r))
			if err != nil {
				return fmt.Errorf("guest %q: %w", g.Name, err)
			}
			g.DietaryRestrictions[j] = d
		}
	}

	for i := range p.Guests {
		g := &p.Guests[i]
		if g.GuestOf == "" || ids[g.GuestOf] {
			continue
		}
		if match := byName[g.GuestOf]; len(match) == 1 {
			g.GuestOf = match[0]
		}
	}
	return nil
}

func writePlan(w io.Writer, plan *planFile, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
