// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/keyprofiles/internal/evolve"
	"github.com/jonathan/keyprofiles/internal/profiles"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barScale is the number of bar characters per unit of weight
	barScale = 100
)

// degreeLabels names each pitch class by its interval above the tonic.
var degreeLabels = [profiles.PitchClasses]string{
	"1", "b2", "2", "b3", "3", "4", "#4", "5", "b6", "6", "b7", "7",
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("-", boxWidth-2)
	fmt.Fprintf(p.out, "+%s+\n", border)
	fmt.Fprintf(p.out, "| %-*s |\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "+%s+\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "| %-*s |\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "+%s+\n", border)
}

func writeBars(sb *strings.Builder, v profiles.Vector) {
	for pc, w := range v {
		fmt.Fprintf(sb, "%-3s %.4f %s\n", degreeLabels[pc], w, strings.Repeat("#", int(w*barScale+0.5)))
	}
}

// PrintProfile outputs one profile as a bar chart over the twelve pitch classes.
func (p *Printer) PrintProfile(mode profiles.Mode, name profiles.Name, v profiles.Vector) {
	var sb strings.Builder
	writeBars(&sb, v)
	p.printBox(fmt.Sprintf("%s PROFILE: %s", strings.ToUpper(mode.String()), name), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelection outputs the selector's active pair, or notes that it is unset.
func (p *Printer) PrintSelection(s *profiles.Selector) {
	if s == nil {
		return
	}
	if !s.IsSet() {
		p.printBox("ACTIVE KEY PROFILES", "No profile selected")
		return
	}

	// A set selection always resolves.
	major, _ := s.MajorVector()
	minor, _ := s.MinorVector()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Major: %s\n", s.MajorName())
	writeBars(&sb, major)
	fmt.Fprintf(&sb, "\nMinor: %s\n", s.MinorName())
	writeBars(&sb, minor)

	p.printBox("ACTIVE KEY PROFILES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCatalogue lists the profile names known for each mode.
func (p *Printer) PrintCatalogue(cat *profiles.Catalogue, modes ...profiles.Mode) {
	if len(modes) == 0 {
		modes = profiles.Modes
	}

	var sb strings.Builder
	for i, mode := range modes {
		fmt.Fprintf(&sb, "%s:\n", strings.ToUpper(mode.String()[:1])+mode.String()[1:])
		for _, name := range cat.Names(mode) {
			fmt.Fprintf(&sb, "  - %s\n", name)
		}
		if i < len(modes)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("KEY PROFILE CATALOGUE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGeneration outputs the top candidates of a ranked generation.
func (p *Printer) PrintGeneration(ranked []evolve.Scored) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generation %d, %d candidates\n\n", ranked[0].Candidate.Generation, len(ranked))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, "#%d  %.4f  %s\n", i+1, ranked[i].Score, ranked[i].Candidate.Name)
	}
	if len(ranked) > maxItemsToShow {
		fmt.Fprintf(&sb, "... and %d more", len(ranked)-maxItemsToShow)
	}

	p.printBox("GENERATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPopulation outputs the first candidates of an unscored population.
func (p *Printer) PrintPopulation(generation int, candidates []evolve.Candidate) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generation %d, %d candidates\n\n", generation, len(candidates))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, "#%d  %s\n", i+1, candidates[i].Name)
	}
	if len(candidates) > maxItemsToShow {
		fmt.Fprintf(&sb, "... and %d more", len(candidates)-maxItemsToShow)
	}

	p.printBox("POPULATION", strings.TrimSuffix(sb.String(), "\n"))
}
