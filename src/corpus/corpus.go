// Package corpus collects the training texts for each author and the unknown documents to be identified
//
// Training data is either a directory holding one sub-directory per author, or an archive (zip, tar,
// tar.gz, tgz) laid out the same way. Files ending in .gz are decompressed on the fly.
package corpus

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mholt/archiver"
	"github.com/pkg/errors"
)

// archiveExtensions are the file suffixes that are read as archives of author directories
var archiveExtensions = []string{".zip", ".tar", ".tar.gz", ".tgz"}

// Corpus is the concatenated training text of one author
type Corpus struct {
	Author string
	Files  []string // the files that were concatenated, in the order they were read
	Text   string
}

// Document is a single unknown text
type Document struct {
	Name string // base name of the file
	Path string
	Text string
}

// IsArchive reports if a path looks like an archive that ReadAuthors can open
func IsArchive(filePath string) bool {
	lower := strings.ToLower(filePath)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ReadAuthors returns one Corpus per author, sorted by author name
//
// For a directory, each immediate sub-directory is an author and every file below it (recursively)
// is part of their corpus. Archives are read the same way, after skipping a folder that wraps the
// whole archive and shares its name. Files are concatenated in lexical path order, separated by a newline. Dot files
// are ignored.
func ReadAuthors(root string, extensions []string) ([]*Corpus, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "can't access training data")
	}
	if info.IsDir() {
		return readAuthorDirs(root, extensions)
	}
	if IsArchive(root) {
		return readAuthorArchive(root, extensions)
	}
	return nil, errors.Errorf("training data must be a directory or an archive: %v", root)
}

// readAuthorDirs handles a directory of author directories
func readAuthorDirs(root string, extensions []string) ([]*Corpus, error) {
	entries, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read training directory")
	}
	var corpora []*Corpus
	for _, entry := range entries {
		if !entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		files, err := listFiles(filepath.Join(root, entry.Name()), extensions)
		if err != nil {
			return nil, err
		}
		corpus := &Corpus{Author: entry.Name()}
		texts := make([]string, 0, len(files))
		for _, file := range files {
			text, err := ReadFile(file)
			if err != nil {
				return nil, err
			}
			texts = append(texts, text)
			corpus.Files = append(corpus.Files, file)
		}
		corpus.Text = strings.Join(texts, "\n")
		corpora = append(corpora, corpus)
	}
	return corpora, nil
}

// readAuthorArchive handles an archive of author directories
//
// A folder named after the archive that wraps every file is skipped (authors.zip holding authors/austen/...),
// then the first path element of each file is its author.
func readAuthorArchive(archivePath string, extensions []string) ([]*Corpus, error) {
	type entry struct {
		elements []string
		name     string
		text     string
	}
	var entries []entry
	err := archiver.Walk(archivePath, func(f archiver.File) error {
		if f.IsDir() {
			return nil
		}
		name := archiveEntryName(f)
		if hasHiddenElement(name) || !matchesExtension(name, extensions) {
			return nil
		}
		data, err := ioutil.ReadAll(f)
		if err != nil {
			return errors.Wrapf(err, "can't read %v from archive", name)
		}
		if strings.HasSuffix(strings.ToLower(name), ".gz") {
			if data, err = gunzip(data); err != nil {
				return errors.Wrapf(err, "can't decompress %v from archive", name)
			}
		}
		entries = append(entries, entry{elements: strings.Split(name, "/"), name: name, text: string(data)})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't walk archive %v", archivePath)
	}

	// strip the folder that wraps the whole archive, which is named after the archive
	if len(entries) != 0 {
		wrapper := archiveStem(archivePath)
		shared := true
		for _, e := range entries {
			if len(e.elements) < 3 || e.elements[0] != wrapper {
				shared = false
				break
			}
		}
		if shared {
			for i := range entries {
				entries[i].elements = entries[i].elements[1:]
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	byAuthor := make(map[string]*Corpus)
	texts := make(map[string][]string)
	var authors []string
	for _, e := range entries {
		// files that are not inside an author folder are ignored
		if len(e.elements) < 2 {
			continue
		}
		author := e.elements[0]
		corpus, ok := byAuthor[author]
		if !ok {
			corpus = &Corpus{Author: author}
			byAuthor[author] = corpus
			authors = append(authors, author)
		}
		corpus.Files = append(corpus.Files, e.name)
		texts[author] = append(texts[author], e.text)
	}
	sort.Strings(authors)
	corpora := make([]*Corpus, 0, len(authors))
	for _, author := range authors {
		byAuthor[author].Text = strings.Join(texts[author], "\n")
		corpora = append(corpora, byAuthor[author])
	}
	return corpora, nil
}

// archiveStem returns the base name of an archive without its archive extension
func archiveStem(archivePath string) string {
	base := filepath.Base(archivePath)
	lower := strings.ToLower(base)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lower, ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

// archiveEntryName returns the full path of an archive entry, falling back to its base name
func archiveEntryName(f archiver.File) string {
	switch header := f.Header.(type) {
	case zip.FileHeader:
		return strings.TrimPrefix(header.Name, "./")
	case *tar.Header:
		return strings.TrimPrefix(header.Name, "./")
	}
	return f.Name()
}

// ReadDocuments returns the unknown documents found at each path, which can be files or directories
//
// Directories are walked recursively. The documents are sorted by path.
func ReadDocuments(paths []string, extensions []string) ([]*Document, error) {
	var docs []*Document
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "can't access input")
		}
		files := []string{p}
		if info.IsDir() {
			if files, err = listFiles(p, extensions); err != nil {
				return nil, err
			}
		}
		for _, file := range files {
			text, err := ReadFile(file)
			if err != nil {
				return nil, err
			}
			docs = append(docs, &Document{Name: filepath.Base(file), Path: file, Text: text})
		}
	}
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// ReadFile returns the contents of a text file, decompressing it if it ends in .gz
func ReadFile(filePath string) (string, error) {
	fh, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "can't open file")
	}
	defer fh.Close()
	var reader io.Reader = fh
	if strings.HasSuffix(strings.ToLower(filePath), ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return "", errors.Wrapf(err, "can't decompress %v", filePath)
		}
		defer gz.Close()
		reader = gz
	}
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return "", errors.Wrapf(err, "can't read %v", filePath)
	}
	return string(data), nil
}

// listFiles returns every regular, non-hidden file below dir that matches the extensions, in lexical order
func listFiles(dir string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(p string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		// ignore dot files and directories
		if p != dir && isHidden(f.Name()) {
			if f.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if f.Mode().IsRegular() && matchesExtension(p, extensions) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't walk %v", dir)
	}
	return files, nil
}

// matchesExtension reports if a file name ends with one of the extensions (optionally followed by .gz)
//
// An empty extension list matches everything.
func matchesExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	lower := strings.TrimSuffix(strings.ToLower(name), ".gz")
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

func hasHiddenElement(name string) bool {
	for _, element := range strings.Split(name, "/") {
		if isHidden(element) && element != "." {
			return true
		}
	}
	return false
}

func gunzip(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return ioutil.ReadAll(gz)
}
