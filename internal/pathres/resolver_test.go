package pathres

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workTree builds the standard fixture layout:
//
//	<tmp>/work                   workspace root
//	<tmp>/work/samples           sample files
//	<tmp>/work/samples/models    bundled models
//	<tmp>/uploads                NOT created
func workTree(t *testing.T) (roots []SearchRoot, tmp string) {
	t.Helper()
	tmp = t.TempDir()
	models := filepath.Join(tmp, "work", "samples", "models")
	require.NoError(t, os.MkdirAll(models, 0o755))

	roots = []SearchRoot{
		{Label: "uploads", Base: filepath.Join(tmp, "uploads")},
		{Label: "workspace", Base: filepath.Join(tmp, "work")},
		{Label: "samples", Base: filepath.Join(tmp, "work", "samples")},
		{Label: "models", Base: models},
	}
	return roots, tmp
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("OS:Version,\n  3.7.0;\n"), 0o644))
}

func TestResolveEmptyPath(t *testing.T) {
	roots, _ := workTree(t)

	for _, path := range []string{"", "   ", "\t\n"} {
		probes := 0
		r := New(roots, "/mnt").WithStat(func(p string) (os.FileInfo, error) {
			probes++
			return os.Stat(p)
		})

		_, err := r.Resolve(Request{Path: path})
		assert.ErrorIs(t, err, ErrEmptyPath)
		assert.Zero(t, probes, "malformed request must be rejected before any filesystem access")
	}
}

func TestResolveExtensionMismatch(t *testing.T) {
	roots, _ := workTree(t)
	r := New(roots, "/mnt")

	_, err := r.Resolve(Request{Path: "model.idf", Extensions: []string{".osm"}})
	assert.ErrorIs(t, err, ErrExtension)
}

func TestResolveAbsolutePath(t *testing.T) {
	roots, tmp := workTree(t)
	target := filepath.Join(tmp, "elsewhere", "direct.osm")
	touch(t, target)

	// Found independent of root configuration, including with no roots at all.
	for _, rootSet := range [][]SearchRoot{roots, nil} {
		r := New(rootSet, "/mnt")
		res, err := r.Resolve(Request{Path: target, Extensions: []string{".osm"}})
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, target, res.Path)
	}
}

func TestResolveShortCircuits(t *testing.T) {
	roots, tmp := workTree(t)
	touch(t, filepath.Join(tmp, "work", "bldg.osm"))
	touch(t, filepath.Join(tmp, "work", "samples", "bldg.osm"))

	var probedPaths []string
	r := New(roots, "/mnt").WithStat(func(p string) (os.FileInfo, error) {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			probedPaths = append(probedPaths, p)
		}
		return info, err
	})

	res, err := r.Resolve(Request{Path: "bldg.osm"})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, filepath.Join(tmp, "work", "bldg.osm"), res.Path)

	// The samples and models roots are lower priority and must never be probed.
	for _, p := range probedPaths {
		assert.NotContains(t, p, "samples")
	}
}

func TestResolveNotFoundProbesAllActiveRoots(t *testing.T) {
	roots, _ := workTree(t)
	r := New(roots, "/mnt")

	res, err := r.Resolve(Request{Path: "missing.osm"})
	require.NoError(t, err)
	assert.False(t, res.Found)

	// The uploads root does not exist, so exactly three locations are probed.
	require.Len(t, res.Probed, 3)
	assert.Equal(t, "workspace", res.Probed[0].Label)
	assert.Equal(t, "samples", res.Probed[1].Label)
	assert.Equal(t, "models", res.Probed[2].Label)
}

func TestResolveFindsFileInModelsRoot(t *testing.T) {
	roots, tmp := workTree(t)
	target := filepath.Join(tmp, "work", "samples", "models", "bldg.osm")
	touch(t, target)

	res, err := New(roots, "/mnt").Resolve(Request{Path: "bldg.osm"})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, target, res.Path)
}

func TestResolveMissWithSuggestions(t *testing.T) {
	roots, tmp := workTree(t)
	touch(t, filepath.Join(tmp, "work", "samples", "models", "building.osm"))

	res, err := New(roots, "/mnt").Resolve(Request{Path: "bldg", Extensions: []string{".osm"}})
	require.NoError(t, err)
	assert.False(t, res.Found)

	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, filepath.Join(tmp, "work", "samples", "models", "building.osm"), res.Suggestions[0].Path)
	assert.GreaterOrEqual(t, res.Suggestions[0].Score, float64(SimilarityThreshold))
}

func TestResolveTranslatesHostPath(t *testing.T) {
	roots, tmp := workTree(t)
	mountRoot := filepath.Join(tmp, "mnt")
	target := filepath.Join(mountRoot, "c", "Users", "A", "plan.osm")
	touch(t, target)

	res, err := New(roots, mountRoot).Resolve(Request{Path: `C:\Users\A\plan.osm`})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, target, res.Path)
}

func TestResolveUploadsRootGainsPriorityWhenPresent(t *testing.T) {
	roots, tmp := workTree(t)
	touch(t, filepath.Join(tmp, "uploads", "bldg.osm"))
	touch(t, filepath.Join(tmp, "work", "bldg.osm"))

	res, err := New(roots, "/mnt").Resolve(Request{Path: "bldg.osm"})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, filepath.Join(tmp, "uploads", "bldg.osm"), res.Path)
}

// New roots and files are picked up without any restart or cache flush.
func TestResolveSeesFilesCreatedBetweenCalls(t *testing.T) {
	roots, tmp := workTree(t)
	r := New(roots, "/mnt")

	res, err := r.Resolve(Request{Path: "late.osm"})
	require.NoError(t, err)
	assert.False(t, res.Found)

	touch(t, filepath.Join(tmp, "work", "samples", "late.osm"))

	res, err = r.Resolve(Request{Path: "late.osm"})
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestResolveOutput(t *testing.T) {
	tmp := t.TempDir()
	outputs := filepath.Join(tmp, "outputs")
	r := New(nil, "/mnt")

	t.Run("BareFilenameLandsInDefaultDir", func(t *testing.T) {
		path, err := r.ResolveOutput("result.osm", outputs)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(outputs, "result.osm"), path)
		assert.DirExists(t, outputs)
	})

	t.Run("AbsolutePathPassesThrough", func(t *testing.T) {
		target := filepath.Join(tmp, "deep", "dir", "out.idf")
		path, err := r.ResolveOutput(target, outputs)
		require.NoError(t, err)
		assert.Equal(t, target, path)
		assert.DirExists(t, filepath.Dir(target))
	})

	t.Run("EmptyPathRejected", func(t *testing.T) {
		_, err := r.ResolveOutput("  ", outputs)
		assert.ErrorIs(t, err, ErrEmptyPath)
	})
}
