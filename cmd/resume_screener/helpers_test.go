package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectResumePaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.pdf", "c.docx", "notes.log", "sub"} {
		path := filepath.Join(dir, name)
		if name == "sub" {
			require.NoError(t, os.Mkdir(path, 0755))
			continue
		}
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	t.Run("directory mode keeps supported formats sorted", func(t *testing.T) {
		paths, err := collectResumePaths(dir, "")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.pdf"),
			filepath.Join(dir, "b.txt"),
			filepath.Join(dir, "c.docx"),
		}, paths)
	})

	t.Run("glob mode keeps every match", func(t *testing.T) {
		paths, err := collectResumePaths("", filepath.Join(dir, "*.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "b.txt")}, paths)
	})

	t.Run("dir and glob are mutually exclusive", func(t *testing.T) {
		_, err := collectResumePaths(dir, "*.txt")
		assert.ErrorContains(t, err, "mutually exclusive")
	})

	t.Run("neither dir nor glob is an error", func(t *testing.T) {
		_, err := collectResumePaths("", "")
		assert.ErrorContains(t, err, "either --dir or --glob")
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		_, err := collectResumePaths(filepath.Join(dir, "missing"), "")
		assert.Error(t, err)
	})
}

func TestLoadVocabulary(t *testing.T) {
	t.Run("empty path selects the built-in default", func(t *testing.T) {
		vocab, err := loadVocabulary("")
		require.NoError(t, err)
		assert.Greater(t, vocab.Len(), 0)
	})

	t.Run("custom file replaces the default wholesale", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vocab.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"skills": {"cobol": []}}`), 0644))

		vocab, err := loadVocabulary(path)
		require.NoError(t, err)
		assert.Equal(t, 1, vocab.Len())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := loadVocabulary(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestNewAdvancedExtractor(t *testing.T) {
	t.Run("disabled returns nil extractor and safe cleanup", func(t *testing.T) {
		extractor, cleanup, err := newAdvancedExtractor(context.Background(), false, "", "")
		require.NoError(t, err)
		assert.Nil(t, extractor)
		cleanup()
	})

	t.Run("enabled without a key is an error", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		_, _, err := newAdvancedExtractor(context.Background(), true, "", "")
		assert.ErrorContains(t, err, "API key")
	})
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, writeJSONFile(path, map[string]int{"total_score": 75}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_score": 75}`, string(data))
}
