// Package palette provides the in-memory command palette of the shell.
package palette

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/tejashwikalptaru/helpabout/internal/domain"
	"github.com/tejashwikalptaru/helpabout/internal/ports"
)

// Entry is a palette item together with the label of the command it points at.
type Entry struct {
	domain.PaletteItem
	Label string
}

// Palette implements ports.Palette.
// Items keep their insertion order within equal (category, rank) pairs.
type Palette struct {
	logger   *slog.Logger
	commands ports.CommandRegistry
	bus      ports.EventBus

	mu    sync.RWMutex
	items []*slot
	seq   int
}

type slot struct {
	item domain.PaletteItem
	seq  int
}

// NewPalette creates an empty palette. Labels are resolved through commands at read time.
func NewPalette(logger *slog.Logger, commands ports.CommandRegistry, bus ports.EventBus) *Palette {
	return &Palette{
		logger:   logger,
		commands: commands,
		bus:      bus,
	}
}

// AddItem adds an entry. The command does not have to be registered yet.
func (p *Palette) AddItem(item domain.PaletteItem) (domain.Disposable, error) {
	if strings.TrimSpace(item.Command) == "" {
		return nil, domain.ErrInvalidPaletteItem
	}

	p.mu.Lock()
	p.seq++
	s := &slot{item: item, seq: p.seq}
	p.items = append(p.items, s)
	p.mu.Unlock()

	p.logger.Debug("palette item added",
		slog.String("command", item.Command),
		slog.String("category", item.Category))
	p.publish(domain.NewPaletteItemAddedEvent(item))

	return domain.DisposeFunc(func() { p.remove(s) }), nil
}

// remove drops s; disposing an entry twice publishes once.
func (p *Palette) remove(s *slot) {
	p.mu.Lock()
	removed := false
	for i, candidate := range p.items {
		if candidate == s {
			p.items = append(p.items[:i:i], p.items[i+1:]...)
			removed = true
			break
		}
	}
	p.mu.Unlock()

	if !removed {
		return
	}
	p.logger.Debug("palette item removed", slog.String("command", s.item.Command))
	p.publish(domain.NewPaletteItemRemovedEvent(s.item))
}

func (p *Palette) publish(event domain.Event) {
	if p.bus != nil {
		p.bus.Publish(event)
	}
}

// Items returns all entries ordered by category, then rank, then insertion.
// Entries whose command is not registered are still listed, with an empty label.
func (p *Palette) Items() []Entry {
	p.mu.RLock()
	slots := make([]*slot, len(p.items))
	copy(slots, p.items)
	p.mu.RUnlock()

	sort.SliceStable(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.item.Category != b.item.Category {
			return a.item.Category < b.item.Category
		}
		if a.item.Rank != b.item.Rank {
			return a.item.Rank < b.item.Rank
		}
		return a.seq < b.seq
	})

	entries := make([]Entry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, Entry{PaletteItem: s.item, Label: p.commands.Label(s.item.Command)})
	}
	return entries
}

// Categories returns the distinct categories in display order.
func (p *Palette) Categories() []string {
	var categories []string
	seen := make(map[string]bool)
	for _, entry := range p.Items() {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
	}
	return categories
}

// Search returns the entries whose label, category or command id contains every
// whitespace-separated word of query, case-insensitively. An empty query matches all.
func (p *Palette) Search(query string) []Entry {
	words := strings.Fields(strings.ToLower(query))
	all := p.Items()
	if len(words) == 0 {
		return all
	}

	matches := make([]Entry, 0, len(all))
	for _, entry := range all {
		haystack := strings.ToLower(entry.Category + " " + entry.Label + " " + entry.Command)
		if containsAll(haystack, words) {
			matches = append(matches, entry)
		}
	}
	return matches
}

func containsAll(haystack string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(haystack, w) {
			return false
		}
	}
	return true
}

var _ ports.Palette = (*Palette)(nil)
