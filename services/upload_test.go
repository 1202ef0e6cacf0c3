package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/pmtrec/portofolio/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()
	return NewUploadService(map[string]string{"UPLOAD_DIR": t.TempDir()})
}

func makeFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("files", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["files"][0]
}

func TestSaveStoresFileOnDisk(t *testing.T) {
	uploads := newTestUploadService(t)

	saved, err := uploads.Save(makeFileHeader(t, "notes.txt", []byte("hello")))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "notes.txt", saved.Name)
	assert.Equal(t, int64(5), saved.Size)
	assert.Empty(t, saved.Preview)

	data, err := os.ReadFile(saved.path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestSaveBuildsImagePreview(t *testing.T) {
	uploads := newTestUploadService(t)

	saved, err := uploads.Save(makeFileHeader(t, "photo.png", []byte{0x89, 0x50, 0x4e, 0x47}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(saved.Preview, "data:image/png;base64,"))
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	uploads := newTestUploadService(t)

	_, err := uploads.Save(makeFileHeader(t, "script.exe", []byte("MZ")))
	require.Error(t, err)
	assert.True(t, errs.IsBadRequest(err))
}

func TestListReturnsUploadsInOrder(t *testing.T) {
	uploads := newTestUploadService(t)

	first, err := uploads.Save(makeFileHeader(t, "a.txt", []byte("a")))
	require.NoError(t, err)
	second, err := uploads.Save(makeFileHeader(t, "b.txt", []byte("b")))
	require.NoError(t, err)

	listed := uploads.List()
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
}

func TestRemoveDeletesFileAndEntry(t *testing.T) {
	uploads := newTestUploadService(t)

	saved, err := uploads.Save(makeFileHeader(t, "a.txt", []byte("a")))
	require.NoError(t, err)

	require.NoError(t, uploads.Remove(saved.ID))
	assert.Empty(t, uploads.List())
	_, err = os.Stat(saved.path)
	assert.True(t, os.IsNotExist(err))

	err = uploads.Remove(saved.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
