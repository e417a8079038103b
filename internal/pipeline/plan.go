package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/alexrwlaw/EPUBRenamer/internal/config"
	"github.com/alexrwlaw/EPUBRenamer/internal/logging"
	"github.com/alexrwlaw/EPUBRenamer/internal/metadata"
	"github.com/alexrwlaw/EPUBRenamer/internal/naming"
)

// Item is one planned rename: a source file, the metadata read for it,
// and its resolved collision-free name. The plan is a decision, not an
// action; applying it is the runner's job.
type Item struct {
	Source   string
	Meta     metadata.RawMetadata
	Name     naming.ProposedName
	Suffixed bool   // collision suffix was needed
	Note     string // why a fallback was used, if one was
}

// BuildPlan runs the normalization pipeline over files in order and
// returns one Item per input. exists probes the destination for
// pre-existing names; nil means nothing pre-exists (--force).
func BuildPlan(cfg *config.Config, log *logging.Logger, files []string, exists naming.ExistsFunc) []Item {
	used := naming.NewUsedNameSet()
	order := naming.Order(cfg.AuthorOrder)

	items := make([]Item, 0, len(files))
	for _, path := range files {
		item := Item{Source: path}

		meta, err := metadata.ReadFile(path)
		if err != nil {
			item.Note = "unreadable metadata, using filename"
			log.Debug(cfg.Verbose, "%s: %v", filepath.Base(path), err)
		}
		item.Meta = meta

		title := strings.Join(strings.Fields(meta.Title), " ")
		if title == "" {
			base := filepath.Base(path)
			title = strings.TrimSuffix(base, filepath.Ext(base))
			if item.Note == "" {
				item.Note = "no title in metadata, using filename"
			}
		}

		authors := make([]string, 0, len(meta.Authors))
		for _, a := range meta.Authors {
			a = naming.NormalizeAuthor(a, order)
			if cfg.TitleCase {
				a = naming.TitleCase(a, naming.DomainAuthor)
			}
			authors = append(authors, a)
		}
		if cfg.TitleCase {
			title = naming.TitleCase(title, naming.DomainTitle)
		}

		stem := naming.BuildStem(title, strings.Join(authors, ", "), cfg.StripDiacritics)
		candidate := naming.BuildFileName(stem, cfg.Extension, cfg.StripDiacritics)
		resolved := naming.ResolveCollision(candidate, used, exists)

		ext := filepath.Ext(resolved)
		item.Suffixed = resolved != candidate
		item.Name = naming.ProposedName{
			SourceID: path,
			Stem:     strings.TrimSuffix(resolved, ext),
			Ext:      ext,
		}
		items = append(items, item)
	}
	return items
}
