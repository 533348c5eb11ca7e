// Package episode groups raw media links into episodes and derives
// folder and file names for them.
package episode

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrNoMarker reported for a link without a _download or _worksheet suffix
	ErrNoMarker = errors.New("no _download or _worksheet marker")
	// ErrBadKey reported when the remainder of a link is not YYMMDD_slug
	ErrBadKey = errors.New("key is not of the form YYMMDD_slug")
)

var keyRe = regexp.MustCompile(`^[0-9]{6}_[A-Za-z0-9_]+$`)

// DefaultSeriesAliases are slug prefixes that name the series rather than
// the episode and are dropped from folder names.
var DefaultSeriesAliases = []string{"6_minute_english", "6min_english", "the_english_we_speak"}

// Parser builds episodes from the links file contents
type Parser struct {
	seriesAliases []string
	titler        cases.Caser
}

// NewParser creates parser, falling back to DefaultSeriesAliases
func NewParser(seriesAliases []string) *Parser {
	if len(seriesAliases) == 0 {
		seriesAliases = DefaultSeriesAliases
	}
	return &Parser{seriesAliases: seriesAliases, titler: cases.Title(language.English)}
}

// Classify reports whether a link is an audio or a worksheet download.
// The _download/_worksheet suffix is the wire contract with the upstream
// site and is interpreted only here.
func Classify(rawURL string) (Kind, error) {
	_, kind, err := splitMarkers(urlStem(rawURL))
	return kind, err
}

// ParseEntry classifies a single link and extracts its episode key
func ParseEntry(rawURL string) (LinkEntry, error) {
	stem, kind, err := splitMarkers(urlStem(rawURL))
	if err != nil {
		return LinkEntry{}, fmt.Errorf("%s: %w", rawURL, err)
	}

	key := strings.NewReplacer("'", "", "`", "").Replace(stem)
	if !keyRe.MatchString(key) {
		return LinkEntry{}, fmt.Errorf("%s: %w", rawURL, ErrBadKey)
	}

	return LinkEntry{URL: rawURL, Kind: kind, Key: key}, nil
}

// Parse reads one url per line, groups lines by episode key and returns
// complete audio/worksheet pairs in first-appearance order of their keys.
// Malformed lines and incomplete pairs are logged and skipped.
func (p *Parser) Parse(contents string) []Episode {
	type pair struct {
		audio     string
		worksheet string
	}
	pairs := map[string]*pair{}
	var order []string

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		entry, err := ParseEntry(line)
		if err != nil {
			log.Printf("[WARN] skip malformed line, %v", err)
			continue
		}

		pr, ok := pairs[entry.Key]
		if !ok {
			pr = &pair{}
			pairs[entry.Key] = pr
			order = append(order, entry.Key)
		}

		// duplicate keys are last-write-wins
		switch entry.Kind {
		case Audio:
			if pr.audio != "" {
				log.Printf("[WARN] duplicate audio link for %s, keeping %s", entry.Key, entry.URL)
			}
			pr.audio = entry.URL
		case Worksheet:
			if pr.worksheet != "" {
				log.Printf("[WARN] duplicate worksheet link for %s, keeping %s", entry.Key, entry.URL)
			}
			pr.worksheet = entry.URL
		}
	}

	var result []Episode
	for _, key := range order {
		pr := pairs[key]
		if pr.audio == "" || pr.worksheet == "" {
			log.Printf("[WARN] incomplete pair for %s, skipping", key)
			continue
		}
		result = append(result, Episode{
			Key:          key,
			FolderName:   p.FolderName(key),
			AudioURL:     pr.audio,
			WorksheetURL: pr.worksheet,
		})
	}

	return result
}

// FolderName turns an episode key into a display folder name: the date and
// series tokens are dropped, underscores become spaces, words get title case.
func (p *Parser) FolderName(key string) string {
	slug := key
	if i := strings.Index(slug, "_"); i > 0 {
		slug = slug[i+1:]
	}
	for _, alias := range p.seriesAliases {
		if rest, ok := strings.CutPrefix(slug, alias+"_"); ok {
			slug = rest
			break
		}
	}
	return p.titler.String(strings.ReplaceAll(slug, "_", " "))
}

func urlStem(rawURL string) string {
	target := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		target = u.Path
	}
	base := path.Base(target)
	return strings.TrimSuffix(base, path.Ext(base))
}

// splitMarkers strips trailing markers from an extension-less file stem.
// A worksheet marker anywhere among the stripped suffixes wins over the
// plain download marker, so stems like xxx_worksheet_download classify
// as worksheets.
func splitMarkers(stem string) (string, Kind, error) {
	worksheet := false
	found := false
	for {
		trimmed := strings.TrimSuffix(stem, "_")
		switch {
		case strings.HasSuffix(trimmed, "_download"):
			stem = strings.TrimSuffix(trimmed, "_download")
			found = true
		case strings.HasSuffix(trimmed, "_worksheet"):
			stem = strings.TrimSuffix(trimmed, "_worksheet")
			found = true
			worksheet = true
		default:
			if !found {
				return "", Audio, ErrNoMarker
			}
			if worksheet {
				return stem, Worksheet, nil
			}
			return stem, Audio, nil
		}
	}
}
