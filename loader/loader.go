// Package loader reads catalog files. Each non-blank line not starting with '#' is
//
//	title | id | tag1,tag2
//
// with exactly three fields. The tags field may be empty, but its separator is required.
package loader

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/network"
	"github.com/vidplay-cli/vidplay/video"
)

//go:embed videos.txt
var builtin string

var (
	ErrDuplicateID = errors.New("duplicate video id")
	ErrMalformed   = errors.New("malformed catalog line")
)

// LineError locates a parse failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse reads videos from r in file order. Ids must be unique.
func Parse(r io.Reader) ([]*video.Video, error) {
	var (
		videos  []*video.Video
		seen    = make(map[string]int)
		scanner = bufio.NewScanner(r)
		n       int
	)

	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, constant.CatalogComment) {
			continue
		}

		v, err := parseLine(line)
		if err != nil {
			return nil, &LineError{Line: n, Err: err}
		}

		if first, ok := seen[v.ID()]; ok {
			return nil, &LineError{Line: n, Err: fmt.Errorf("%w %q, first seen on line %d", ErrDuplicateID, v.ID(), first)}
		}
		seen[v.ID()] = n

		videos = append(videos, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return videos, nil
}

func parseLine(line string) (*video.Video, error) {
	fields := lo.Map(strings.Split(line, constant.CatalogSeparator), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})

	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected \"title | id | tags\"", ErrMalformed)
	}

	title, id := fields[0], fields[1]
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrMalformed)
	}

	var tags []string
	if fields[2] != "" {
		tags = lo.Compact(lo.Map(strings.Split(fields[2], constant.TagSeparator), func(s string, _ int) string {
			return strings.TrimSpace(s)
		}))
	}

	return video.New(title, id, tags), nil
}

func open(path string) (io.ReadCloser, error) {
	if network.IsURL(path) {
		return network.Fetch(context.Background(), path)
	}
	return filesystem.API().Open(path)
}

// Load reads the catalog at path, or the built-in catalog when path is empty.
// Paths starting with http:// or https:// are downloaded.
func Load(path string) ([]*video.Video, error) {
	if path == "" {
		log.Debug("loading built-in catalog")
		return Parse(strings.NewReader(builtin))
	}

	f, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	videos, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Infof("loaded %d videos from %s", len(videos), path)
	return videos, nil
}

// Catalog loads path into a catalog.
func Catalog(path string) (*video.Catalog, error) {
	videos, err := Load(path)
	if err != nil {
		return nil, err
	}
	return video.NewCatalog(videos...), nil
}
