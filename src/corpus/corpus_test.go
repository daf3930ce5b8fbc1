package corpus

import (
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mholt/archiver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile is a test helper that creates parent directories as needed
func writeFile(t *testing.T, filePath, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0700))
	require.NoError(t, ioutil.WriteFile(filePath, []byte(content), 0644))
}

func writeGzip(t *testing.T, filePath, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0700))
	fh, err := os.Create(filePath)
	require.NoError(t, err)
	gz := gzip.NewWriter(fh)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, fh.Close())
}

// trainingTree builds a directory of author directories
func trainingTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "authors")
	writeFile(t, filepath.Join(root, "austen", "a.txt"), "It is a truth universally acknowledged.")
	writeFile(t, filepath.Join(root, "austen", "b.txt"), "My dear Mr. Bennet.")
	writeFile(t, filepath.Join(root, "austen", ".hidden.txt"), "should be ignored")
	writeFile(t, filepath.Join(root, "melville", "nested", "moby.txt"), "Call me Ishmael.")
	writeGzip(t, filepath.Join(root, "melville", "z.txt.gz"), "Some years ago.")
	writeFile(t, filepath.Join(root, "notes.md"), "top level files are not authors")
	return root
}

func TestReadAuthorsFromDirectory(t *testing.T) {
	root := trainingTree(t)
	corpora, err := ReadAuthors(root, nil)
	require.NoError(t, err)
	require.Len(t, corpora, 2)

	assert.Equal(t, "austen", corpora[0].Author)
	assert.Equal(t, "It is a truth universally acknowledged.\nMy dear Mr. Bennet.", corpora[0].Text)
	assert.Len(t, corpora[0].Files, 2)

	assert.Equal(t, "melville", corpora[1].Author)
	assert.Equal(t, "Call me Ishmael.\nSome years ago.", corpora[1].Text)
}

func TestReadAuthorsExtensionFilter(t *testing.T) {
	root := trainingTree(t)
	writeFile(t, filepath.Join(root, "austen", "cover.jpg"), "not text")
	corpora, err := ReadAuthors(root, []string{"txt"})
	require.NoError(t, err)
	require.Len(t, corpora, 2)
	assert.Len(t, corpora[0].Files, 2)
	assert.Len(t, corpora[1].Files, 2, "gzipped text files match their inner extension")
}

func TestReadAuthorsFromArchive(t *testing.T) {
	root := trainingTree(t)
	fromDir, err := ReadAuthors(root, nil)
	require.NoError(t, err)

	for _, ext := range []string{".zip", ".tar.gz"} {
		archivePath := filepath.Join(t.TempDir(), "authors"+ext)
		require.NoError(t, archiver.Archive([]string{root}, archivePath))
		require.True(t, IsArchive(archivePath))

		fromArchive, err := ReadAuthors(archivePath, []string{"txt"})
		require.NoError(t, err, ext)
		require.Len(t, fromArchive, 2, ext)
		assert.Equal(t, "austen", fromArchive[0].Author)
		assert.Equal(t, fromDir[0].Text, fromArchive[0].Text, ext)

		assert.Equal(t, "melville", fromArchive[1].Author)
		assert.Equal(t, fromDir[1].Text, fromArchive[1].Text, ext)
	}
}

func TestReadAuthorsSingleAuthorArchive(t *testing.T) {
	root := filepath.Join(t.TempDir(), "authors")
	writeFile(t, filepath.Join(root, "austen", "vol1", "a.txt"), "It is a truth universally acknowledged.")
	writeFile(t, filepath.Join(root, "austen", "vol2", "b.txt"), "My dear Mr. Bennet.")
	fromDir, err := ReadAuthors(root, nil)
	require.NoError(t, err)
	require.Len(t, fromDir, 1)

	// the austen folder is not named after the archive, so it is an author and not a wrapper
	for _, ext := range []string{".zip", ".tar.gz"} {
		archivePath := filepath.Join(t.TempDir(), "collection"+ext)
		require.NoError(t, archiver.Archive([]string{filepath.Join(root, "austen")}, archivePath))
		fromArchive, err := ReadAuthors(archivePath, nil)
		require.NoError(t, err, ext)
		require.Len(t, fromArchive, 1, ext)
		assert.Equal(t, "austen", fromArchive[0].Author, ext)
		assert.Equal(t, fromDir[0].Text, fromArchive[0].Text, ext)
		assert.Len(t, fromArchive[0].Files, 2, ext)
	}
}

func TestArchiveStem(t *testing.T) {
	assert.Equal(t, "authors", archiveStem("/data/authors.zip"))
	assert.Equal(t, "authors", archiveStem("authors.tar.gz"))
	assert.Equal(t, "Authors", archiveStem("Authors.TGZ"))
	assert.Equal(t, "authors", archiveStem("authors.tar"))
}

func TestReadAuthorsBadInput(t *testing.T) {
	_, err := ReadAuthors(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)

	plain := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, plain, "text")
	_, err = ReadAuthors(plain, nil)
	assert.Error(t, err)
}

func TestReadDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "unknown", "b.txt"), "second")
	writeFile(t, filepath.Join(dir, "unknown", "a.txt"), "first")
	writeGzip(t, filepath.Join(dir, "single.txt.gz"), "zipped")

	docs, err := ReadDocuments([]string{filepath.Join(dir, "unknown"), filepath.Join(dir, "single.txt.gz")}, nil)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "zipped", docs[0].Text)
	assert.Equal(t, "single.txt.gz", docs[0].Name)
	assert.Equal(t, "a.txt", docs[1].Name)
	assert.Equal(t, "first", docs[1].Text)
	assert.Equal(t, "second", docs[2].Text)

	_, err = ReadDocuments([]string{filepath.Join(dir, "nope")}, nil)
	assert.Error(t, err)
}

func TestMatchesExtension(t *testing.T) {
	assert.True(t, matchesExtension("a.txt", nil))
	assert.True(t, matchesExtension("a.TXT", []string{"txt"}))
	assert.True(t, matchesExtension("a.txt.gz", []string{".txt"}))
	assert.False(t, matchesExtension("a.md", []string{"txt"}))
	assert.True(t, hasHiddenElement("authors/.git/x"))
	assert.False(t, hasHiddenElement("./authors/austen/a.txt"))
}
