// Package catalog discovers documentation domains and topics on disk and
// resolves a (domain, topic) pair to a decoded documentation record.
//
// The documentation root is laid out as domain/[category/...]/topic.<ext>.
// Nothing is cached: every call reflects the filesystem at call time.
package catalog

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"doc-quiz/internal/domain"
)

// Extensions lists the documentation file extensions in lookup priority order.
var Extensions = []string{".json", ".yaml", ".yml"}

// TopicFile is a documentation file found under a domain directory.
type TopicFile struct {
	// ID is the slash-separated path relative to the domain dir, without extension.
	ID string
	// Name is the file name without extension.
	Name string
	// Type is the immediate parent directory, or domain.DefaultTopicType at the top level.
	Type string
	// Path is the file's location on disk.
	Path string
}

// Topic converts the file into its catalog representation.
func (f TopicFile) Topic() domain.Topic {
	return domain.Topic{ID: f.ID, Name: f.Name, Type: f.Type}
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// extPriority returns the index of name's extension in Extensions, ignoring
// case, or -1 when it is not a documentation file.
func extPriority(name string) int {
	ext := strings.ToLower(filepath.Ext(name))
	for i, e := range Extensions {
		if ext == e {
			return i
		}
	}
	return -1
}

// documentationExt returns the recognised extension of name as written, or "".
func documentationExt(name string) string {
	if extPriority(name) < 0 {
		return ""
	}
	return filepath.Ext(name)
}

// topicFiles maps each topic name in a directory listing to the file that
// backs it. When several files share a name, the extension earliest in
// Extensions wins, then the lexically first file name.
func topicFiles(entries []os.DirEntry) map[string]string {
	chosen := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || isHidden(name) {
			continue
		}
		p := extPriority(name)
		if p < 0 {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if current, ok := chosen[base]; !ok || p < extPriority(current) {
			chosen[base] = name
		}
	}
	return chosen
}

// TopicID derives the topic id of the file at rel, a path relative to its domain dir.
func TopicID(rel string) string {
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, documentationExt(rel))
}

// topicType returns the parent directory name of a slash-separated topic id.
func topicType(id string) string {
	segments := strings.Split(id, domain.TopicDelimiter)
	if len(segments) < 2 {
		return domain.DefaultTopicType
	}
	return segments[len(segments)-2]
}

// Walk lazily yields every documentation file under domainDir, depth first in
// lexical order. Each range over the returned sequence re-reads the directory.
// A directory that cannot be read yields its error; iteration then continues
// with the remaining entries unless the consumer stops.
func Walk(domainDir string) iter.Seq2[TopicFile, error] {
	return func(yield func(TopicFile, error) bool) {
		walkDir(domainDir, "", yield)
	}
}

func walkDir(domainDir, rel string, yield func(TopicFile, error) bool) bool {
	entries, err := os.ReadDir(filepath.Join(domainDir, rel))
	if err != nil {
		return yield(TopicFile{}, err)
	}
	chosen := topicFiles(entries)
	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) {
			continue
		}
		childRel := filepath.Join(rel, name)
		if entry.IsDir() {
			if !walkDir(domainDir, childRel, yield) {
				return false
			}
			continue
		}
		ext := documentationExt(name)
		if ext == "" || chosen[strings.TrimSuffix(name, ext)] != name {
			continue
		}
		id := TopicID(childRel)
		file := TopicFile{
			ID:   id,
			Name: strings.TrimSuffix(name, ext),
			Type: topicType(id),
			Path: filepath.Join(domainDir, childRel),
		}
		if !yield(file, nil) {
			return false
		}
	}
	return true
}

// CollectTopics drains Walk into a slice, stopping at the first error.
func CollectTopics(domainDir string) ([]TopicFile, error) {
	var files []TopicFile
	for f, err := range Walk(domainDir) {
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
